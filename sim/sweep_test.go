package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSweep_ResultsInLimitOrder(t *testing.T) {
	limits := []int{10, 1, 5, 0}

	results, err := RunSweep(context.Background(), mixedWorkload(), limits, Config{}, 3)

	require.NoError(t, err)
	require.Len(t, results, len(limits))
	for i, limit := range limits {
		assert.Equal(t, limit, results[i].Limit)
	}
	assert.Empty(t, results[3].Completed)
	assert.Len(t, results[3].Pending, len(mixedWorkload()))
}

func TestRunSweep_MatchesSequentialSimulate(t *testing.T) {
	limits := []int{1, 2, 3, 5, 10}

	parallel, err := RunSweep(context.Background(), mixedWorkload(), limits, Config{}, 4)
	require.NoError(t, err)

	for i, limit := range limits {
		seq := Simulate(mixedWorkload(), limit)
		assert.Equal(t, seq.Completed, parallel[i].Completed, "limit=%d", limit)
		assert.Equal(t, Aggregate(seq.Completed), parallel[i].Summary, "limit=%d", limit)
	}
}

func TestRunSweep_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunSweep(ctx, mixedWorkload(), []int{1, 2}, Config{}, 1)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunSweep_SharedAdmissionPolicyRejected(t *testing.T) {
	_, err := RunSweep(context.Background(), mixedWorkload(), []int{1, 2}, Config{Admission: NewWriteExclusion(1)}, 1)
	assert.Error(t, err)
}

func TestRunSweep_InvalidParallelism_Panics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = RunSweep(context.Background(), nil, []int{1}, Config{}, 0)
	})
}

func TestRunSweep_AdmissionLimitMismatch_Rejected(t *testing.T) {
	// GIVEN a single limit of 5 but a policy that only allows 1
	_, err := RunSweep(context.Background(), mixedWorkload(), []int{5}, Config{Admission: NewWriteExclusion(1)}, 1)

	// THEN the sweep refuses to run
	assert.Error(t, err)
}

func TestRunSweep_AdmissionLimitMatch_Runs(t *testing.T) {
	got, err := RunSweep(context.Background(), mixedWorkload(), []int{2}, Config{Admission: NewWriteExclusion(2)}, 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Simulate(mixedWorkload(), 2).Completed, got[0].Completed)
}
