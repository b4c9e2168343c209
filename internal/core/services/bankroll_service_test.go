package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/SscSPs/bet_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/core/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BankrollServiceTestSuite struct {
	suite.Suite
	repo    *MockBankrollRepository
	service portssvc.BankrollSvcFacade
	ctx     context.Context
}

func (suite *BankrollServiceTestSuite) SetupTest() {
	suite.repo = new(MockBankrollRepository)
	suite.service = services.NewBankrollService(suite.repo)
	suite.ctx = context.Background()
}

func (suite *BankrollServiceTestSuite) TestCreateBankroll_FirstIsDefault() {
	suite.repo.On("ListBankrolls", suite.ctx, "user-1").Return([]domain.Bankroll{}, nil).Once()
	suite.repo.On("SaveBankroll", suite.ctx, mock.MatchedBy(func(b domain.Bankroll) bool {
		return b.Name == "NFL" && b.IsDefault && b.UserID == "user-1"
	})).Return(nil).Once()

	b, err := suite.service.CreateBankroll(suite.ctx, "user-1", dto.CreateBankrollRequest{Name: " NFL ", Baseline: decPtr("500")})

	suite.Require().NoError(err)
	suite.True(b.IsDefault)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *BankrollServiceTestSuite) TestCreateBankroll_DuplicateName() {
	suite.repo.On("ListBankrolls", suite.ctx, "user-1").Return([]domain.Bankroll{{Name: "nfl"}}, nil).Once()

	_, err := suite.service.CreateBankroll(suite.ctx, "user-1", dto.CreateBankrollRequest{Name: "NFL", Baseline: decPtr("500")})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.repo.AssertNotCalled(suite.T(), "SaveBankroll", mock.Anything, mock.Anything)
}

func (suite *BankrollServiceTestSuite) TestDeleteBankroll_NotFound() {
	suite.repo.On("DeleteBankroll", suite.ctx, "user-1", "b1").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteBankroll(suite.ctx, "user-1", "b1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBankrollService(t *testing.T) {
	suite.Run(t, new(BankrollServiceTestSuite))
}
