package spawn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	events, err := Events(ExamplePlan())
	require.NoError(t, err)

	got := Summarize(events)
	require.Equal(t, []StageSummary{
		{Stage: 0, Enemies: 8, FirstSpawn: 5, LastSpawn: 41},
		{Stage: 1, Enemies: 12, FirstSpawn: 5, LastSpawn: 54},
		{Stage: 2, Enemies: 16, FirstSpawn: 5, LastSpawn: 56},
		{Stage: 3, Enemies: 24, FirstSpawn: 5, LastSpawn: 86},
	}, got)
}

func TestSummarize_unordered_input(t *testing.T) {
	got := Summarize([]Event{
		{Enemy: "bear", Stage: 2, Time: 9},
		{Enemy: "bear", Stage: 0, Time: 3},
		{Enemy: "bear", Stage: 2, Time: 1},
	})
	require.Equal(t, []StageSummary{
		{Stage: 0, Enemies: 1, FirstSpawn: 3, LastSpawn: 3},
		{Stage: 2, Enemies: 2, FirstSpawn: 1, LastSpawn: 9},
	}, got)
}

func TestRemainingAfter(t *testing.T) {
	events, err := Events(ExamplePlan())
	require.NoError(t, err)

	require.Equal(t, 60, RemainingAfter(events, 0))
	require.Equal(t, 0, RemainingAfter(events, 86))
	// stage 0: 20,22,35,37,39,41; stage 1: 20,22,24,35,37,39,50,52,54
	// stage 2: 20,22,24,26,35,37,39,41,50,52,54,56; stage 3: waves 1-5
	require.Equal(t, 6+9+12+20, RemainingAfter(events, 19))
}
