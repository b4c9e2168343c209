package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOut[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

type injectionsOut struct {
	Injections []struct {
		Amount string `json:"amount"`
		Source string `json:"source"`
	} `json:"injections"`
	Total string `json:"total"`
}

func TestBetAndTipCmds_RecomputeInjections(t *testing.T) {
	a, out, _ := newTestApp(t)
	require.NoError(t, a.dispatch([]string{"baseline", "600"}))

	out.Reset()
	require.NoError(t, a.dispatch([]string{"bet", "add", "-date", "2024-01-01 12:00", "-bet", "700", "-win", "0", "-notes", "opener"}))
	bet := decodeOut[map[string]any](t, out.Bytes())
	assert.Equal(t, "-700", bet["net"])

	out.Reset()
	require.NoError(t, a.dispatch([]string{"injections"}))
	inj := decodeOut[injectionsOut](t, out.Bytes())
	require.Len(t, inj.Injections, 1)
	assert.Equal(t, "700", inj.Injections[0].Amount)

	out.Reset()
	require.NoError(t, a.dispatch([]string{"tip", "add", "-date", "2024-01-02", "-amount", "50", "-provider", "picks"}))
	tip := decodeOut[map[string]any](t, out.Bytes())
	tipID, _ := tip["id"].(string)
	require.NotEmpty(t, tipID)

	out.Reset()
	require.NoError(t, a.dispatch([]string{"injections"}))
	inj = decodeOut[injectionsOut](t, out.Bytes())
	require.Len(t, inj.Injections, 2)
	assert.Equal(t, "750", inj.Total)

	out.Reset()
	require.NoError(t, a.dispatch([]string{"tip", "delete", tipID}))
	out.Reset()
	require.NoError(t, a.dispatch([]string{"injections"}))
	inj = decodeOut[injectionsOut](t, out.Bytes())
	assert.Len(t, inj.Injections, 1)
	assert.Equal(t, "700", inj.Total)
}

func TestBetCmd_EditAndDelete(t *testing.T) {
	a, out, _ := newTestApp(t)
	require.NoError(t, a.dispatch([]string{"bet", "add", "-date", "2024-02-01", "-bet", "10", "-win", "0"}))
	id, _ := decodeOut[map[string]any](t, out.Bytes())["id"].(string)
	require.NotEmpty(t, id)

	out.Reset()
	require.NoError(t, a.dispatch([]string{"bet", "edit", id, "-date", "2024-02-01", "-bet", "10", "-win", "25"}))
	edited := decodeOut[map[string]any](t, out.Bytes())
	assert.Equal(t, id, edited["id"])
	assert.Equal(t, "15", edited["net"])

	out.Reset()
	require.NoError(t, a.dispatch([]string{"bet", "list"}))
	page := decodeOut[struct {
		Entries []map[string]any `json:"entries"`
	}](t, out.Bytes())
	assert.Len(t, page.Entries, 1)

	require.NoError(t, a.dispatch([]string{"bet", "delete", id}))
	assert.Error(t, a.dispatch([]string{"bet", "delete", id}))
}

func TestBetCmd_RejectsBadInput(t *testing.T) {
	a, _, _ := newTestApp(t)

	assert.Error(t, a.dispatch([]string{"bet", "add", "-date", "yesterday", "-bet", "10"}))
	assert.Error(t, a.dispatch([]string{"bet", "add", "-date", "2024-02-01", "-bet", "ten"}))
	assert.Error(t, a.dispatch([]string{"bet", "add", "-date", "2024-02-01", "-bet", "-5"}))
	assert.ErrorContains(t, a.dispatch([]string{"tip", "frob"}), "unknown tip command")
	assert.ErrorContains(t, a.dispatch([]string{"bet"}), "usage")
}
