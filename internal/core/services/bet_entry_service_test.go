package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bet_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/core/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/SscSPs/bet_tracker/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BetEntryServiceTestSuite struct {
	suite.Suite
	entryRepo    *MockBetEntryRepository
	bankrollRepo *MockBankrollRepository
	recomputer   *MockLedgerRecomputer
	service      portssvc.BetEntrySvcFacade
	ctx          context.Context
	userID       string
}

func (suite *BetEntryServiceTestSuite) SetupTest() {
	suite.entryRepo = new(MockBetEntryRepository)
	suite.bankrollRepo = new(MockBankrollRepository)
	suite.recomputer = new(MockLedgerRecomputer)
	suite.service = services.NewBetEntryService(
		suite.entryRepo,
		suite.recomputer,
		services.WithEntryLocation(time.UTC),
		services.WithEntryBankrollReader(suite.bankrollRepo),
		services.WithEntryClock(func() time.Time { return testNow }),
	)
	suite.ctx = context.Background()
	suite.userID = "user-1"
}

func (suite *BetEntryServiceTestSuite) createRequest() dto.CreateBetEntryRequest {
	return dto.CreateBetEntryRequest{
		Date:          time.Date(2024, 3, 1, 12, 0, 0, 500, time.UTC),
		BetAmount:     decPtr("25"),
		WinningAmount: decPtr("60"),
		Notes:         "  over 2.5  ",
	}
}

func (suite *BetEntryServiceTestSuite) TestCreateBetEntry_Success() {
	req := suite.createRequest()
	suite.entryRepo.On("SaveBetEntry", suite.ctx, mock.MatchedBy(func(e domain.BetEntry) bool {
		return e.UserID == suite.userID && e.Net.Equal(decimal.NewFromInt(35)) && e.Notes == "over 2.5" && e.CreatedAt.Equal(testNow)
	})).Return(nil).Once()
	suite.recomputer.On("Recompute", suite.ctx, suite.userID).Return([]domain.CapitalInjection{}, nil).Once()

	created, err := suite.service.CreateBetEntry(suite.ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.EntryID)
	suite.Zero(created.Date.Nanosecond())
	suite.True(created.Net.Equal(decimal.NewFromInt(35)))
	suite.entryRepo.AssertExpectations(suite.T())
	suite.recomputer.AssertExpectations(suite.T())
}

func (suite *BetEntryServiceTestSuite) TestCreateBetEntry_NegativeAmount() {
	req := suite.createRequest()
	req.BetAmount = decPtr("-1")

	created, err := suite.service.CreateBetEntry(suite.ctx, suite.userID, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveBetEntry", mock.Anything, mock.Anything)
	suite.recomputer.AssertNotCalled(suite.T(), "Recompute", mock.Anything, mock.Anything)
}

func (suite *BetEntryServiceTestSuite) TestCreateBetEntry_UnknownBankroll() {
	req := suite.createRequest()
	bankrollID := "4a1d6a5e-9f4c-4a43-9a53-6dd3b3f2c0aa"
	req.BankrollID = &bankrollID
	suite.bankrollRepo.On("FindBankrollByID", suite.ctx, suite.userID, bankrollID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateBetEntry(suite.ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BetEntryServiceTestSuite) TestCreateBetEntry_RecomputeFailure() {
	suite.entryRepo.On("SaveBetEntry", suite.ctx, mock.AnythingOfType("domain.BetEntry")).Return(nil).Once()
	suite.recomputer.On("Recompute", suite.ctx, suite.userID).Return(nil, assert.AnError).Once()

	_, err := suite.service.CreateBetEntry(suite.ctx, suite.userID, suite.createRequest())

	suite.ErrorIs(err, assert.AnError)
}

func (suite *BetEntryServiceTestSuite) TestUpdateBetEntry_ReplacesFieldsAndRecomputesNet() {
	existing := entry("e1", 1, "10", "0")
	existing.CreatedBy = suite.userID
	suite.entryRepo.On("FindBetEntryByID", suite.ctx, suite.userID, "e1").Return(&existing, nil).Once()
	suite.entryRepo.On("UpdateBetEntry", suite.ctx, mock.MatchedBy(func(e domain.BetEntry) bool {
		return e.EntryID == "e1" && e.Net.Equal(decimal.NewFromInt(35)) && e.LastUpdatedAt.Equal(testNow)
	})).Return(nil).Once()
	suite.recomputer.On("Recompute", suite.ctx, suite.userID).Return([]domain.CapitalInjection{}, nil).Once()

	updated, err := suite.service.UpdateBetEntry(suite.ctx, suite.userID, "e1", dto.UpdateBetEntryRequest(suite.createRequest()))

	suite.Require().NoError(err)
	suite.Equal("e1", updated.EntryID)
	suite.Equal(suite.userID, updated.CreatedBy)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *BetEntryServiceTestSuite) TestUpdateBetEntry_NotFound() {
	suite.entryRepo.On("FindBetEntryByID", suite.ctx, suite.userID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateBetEntry(suite.ctx, suite.userID, "missing", dto.UpdateBetEntryRequest(suite.createRequest()))

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.recomputer.AssertNotCalled(suite.T(), "Recompute", mock.Anything, mock.Anything)
}

func (suite *BetEntryServiceTestSuite) TestDeleteBetEntry() {
	suite.entryRepo.On("DeleteBetEntry", suite.ctx, suite.userID, "e1").Return(nil).Once()
	suite.recomputer.On("Recompute", suite.ctx, suite.userID).Return([]domain.CapitalInjection{}, nil).Once()

	suite.Require().NoError(suite.service.DeleteBetEntry(suite.ctx, suite.userID, "e1"))
	suite.recomputer.AssertExpectations(suite.T())
}

func (suite *BetEntryServiceTestSuite) TestListBetEntries_Paginates() {
	page := []domain.BetEntry{entry("e3", 3, "1", "0"), entry("e2", 2, "1", "0"), entry("e1", 1, "1", "0")}
	suite.entryRepo.On("ListBetEntries", suite.ctx, suite.userID, portsrepo.ListBetEntriesParams{Limit: 3}).Return(page, nil).Once()

	res, err := suite.service.ListBetEntries(suite.ctx, suite.userID, dto.ListBetEntriesParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(res.Entries, 2)
	suite.Require().NotNil(res.NextToken)
	date, id, err := pagination.DecodeToken(*res.NextToken)
	suite.Require().NoError(err)
	suite.Equal("e2", id)
	suite.True(date.Equal(page[1].Date))
}

func (suite *BetEntryServiceTestSuite) TestListBetEntries_LastPage() {
	token := pagination.EncodeToken(time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), "e2")
	suite.entryRepo.On("ListBetEntries", suite.ctx, suite.userID, mock.MatchedBy(func(p portsrepo.ListBetEntriesParams) bool {
		return p.After != nil && p.After.EntryID == "e2" && p.Limit == pagination.DefaultLimit+1
	})).Return([]domain.BetEntry{entry("e1", 1, "1", "0")}, nil).Once()

	res, err := suite.service.ListBetEntries(suite.ctx, suite.userID, dto.ListBetEntriesParams{NextToken: token})

	suite.Require().NoError(err)
	suite.Len(res.Entries, 1)
	suite.Nil(res.NextToken)
}

func (suite *BetEntryServiceTestSuite) TestListBetEntries_BadToken() {
	_, err := suite.service.ListBetEntries(suite.ctx, suite.userID, dto.ListBetEntriesParams{NextToken: "%%%"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BetEntryServiceTestSuite) TestImportBetEntries_SkipsDuplicates() {
	existing := []domain.BetEntry{entry("e1", 1, "50", "100")}
	existing[0].Notes = "dup"
	suite.entryRepo.On("ListAllBetEntries", suite.ctx, suite.userID, (*string)(nil)).Return(existing, nil).Once()
	suite.entryRepo.On("SaveBetEntries", suite.ctx, mock.MatchedBy(func(es []domain.BetEntry) bool {
		return len(es) == 1 && es[0].Notes == "fresh" && es[0].UserID == suite.userID
	})).Return(nil).Once()
	suite.recomputer.On("Recompute", suite.ctx, suite.userID).Return([]domain.CapitalInjection{}, nil).Once()

	csv := "date,betAmount,winningAmount,net,notes\n" +
		"2024-03-01T12:00:00Z,50,100,50,dup\n" +
		"2024-03-04T12:00:00Z,10,0,-10,fresh\n" +
		"bad,1,1,0,broken\n"
	res, err := suite.service.ImportBetEntries(suite.ctx, suite.userID, nil, strings.NewReader(csv))

	suite.Require().NoError(err)
	suite.Equal(1, res.Imported)
	suite.Equal(1, res.Duplicates)
	suite.Equal(1, res.Invalid)
	suite.entryRepo.AssertExpectations(suite.T())
	suite.recomputer.AssertExpectations(suite.T())
}

func (suite *BetEntryServiceTestSuite) TestImportBetEntries_NothingNewSkipsRecompute() {
	suite.entryRepo.On("ListAllBetEntries", suite.ctx, suite.userID, (*string)(nil)).Return([]domain.BetEntry{}, nil).Once()

	res, err := suite.service.ImportBetEntries(suite.ctx, suite.userID, nil, strings.NewReader("date,betAmount,winningAmount,net\n"))

	suite.Require().NoError(err)
	suite.Zero(res.Imported)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveBetEntries", mock.Anything, mock.Anything)
	suite.recomputer.AssertNotCalled(suite.T(), "Recompute", mock.Anything, mock.Anything)
}

func (suite *BetEntryServiceTestSuite) TestImportBetEntries_MissingHeader() {
	suite.entryRepo.On("ListAllBetEntries", suite.ctx, suite.userID, (*string)(nil)).Return([]domain.BetEntry{}, nil).Once()

	_, err := suite.service.ImportBetEntries(suite.ctx, suite.userID, nil, strings.NewReader("a,b,c\n1,2,3\n"))

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BetEntryServiceTestSuite) TestExportBetEntries() {
	suite.entryRepo.On("ListAllBetEntries", suite.ctx, suite.userID, (*string)(nil)).
		Return([]domain.BetEntry{entry("e2", 2, "10", "0"), entry("e1", 1, "5", "15")}, nil).Once()

	var buf bytes.Buffer
	suite.Require().NoError(suite.service.ExportBetEntries(suite.ctx, suite.userID, nil, &buf))

	suite.Equal("date,betAmount,winningAmount,net,notes\n"+
		"2024-03-01T12:00:00Z,5,15,10,\n"+
		"2024-03-02T12:00:00Z,10,0,-10,\n", buf.String())
}

func TestBetEntryService(t *testing.T) {
	suite.Run(t, new(BetEntryServiceTestSuite))
}
