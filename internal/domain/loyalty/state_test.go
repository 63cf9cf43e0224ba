package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCutReachesThresholdInTenCalls(t *testing.T) {
	s := State{}

	for i := 1; i <= RewardThreshold; i++ {
		var ok bool
		s, ok = AddCut(s)
		require.True(t, ok)
		assert.Equal(t, i, s.Cuts)
		assert.False(t, s.Claimed)
	}

	// Cortes extras não passam do teto.
	s, ok := AddCut(s)
	require.True(t, ok)
	assert.Equal(t, RewardThreshold, s.Cuts)
}

func TestAddCutRejectedWhileClaimed(t *testing.T) {
	s := State{Cuts: 0, Claimed: true}

	next, ok := AddCut(s)
	assert.False(t, ok)
	assert.Equal(t, s, next)
}

func TestStartCycleOnlyFromClaimed(t *testing.T) {
	next, ok := StartCycle(State{Cuts: 0, Claimed: true})
	require.True(t, ok)
	assert.Equal(t, State{Cuts: 1, Claimed: false}, next)

	_, ok = StartCycle(State{Cuts: 5, Claimed: false})
	assert.False(t, ok)
}

func TestRemoveCutFloorsAtZero(t *testing.T) {
	s := State{Cuts: 1}

	s = RemoveCut(s)
	assert.Equal(t, 0, s.Cuts)

	s = RemoveCut(s)
	assert.Equal(t, 0, s.Cuts)
}

func TestClaimRequiresThreshold(t *testing.T) {
	for cuts := 0; cuts < RewardThreshold; cuts++ {
		_, ok := Claim(State{Cuts: cuts})
		assert.False(t, ok, "cuts=%d", cuts)
	}

	next, ok := Claim(State{Cuts: RewardThreshold})
	require.True(t, ok)
	assert.Equal(t, State{Cuts: 0, Claimed: true}, next)

	_, ok = Claim(next)
	assert.False(t, ok)
}

func TestFullCycle(t *testing.T) {
	s := State{}

	for i := 0; i < RewardThreshold; i++ {
		s, _ = AddCut(s)
	}
	require.Equal(t, State{Cuts: 10, Claimed: false}, s)

	s, ok := Claim(s)
	require.True(t, ok)
	require.Equal(t, State{Cuts: 0, Claimed: true}, s)

	s, ok = StartCycle(s)
	require.True(t, ok)
	assert.Equal(t, State{Cuts: 1, Claimed: false}, s)
}
