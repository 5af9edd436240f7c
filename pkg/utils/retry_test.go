package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/pkg/utils"
)

var errPermanent = errors.New("permanent upstream failure")
var errOverload = errors.New("service unavailable")

// fakeSleeper records requested delays instead of waiting.
type fakeSleeper struct {
	delays []time.Duration
}

func (f *fakeSleeper) sleep(_ context.Context, d time.Duration) error {
	f.delays = append(f.delays, d)
	return nil
}

func testPolicy(sleeper *fakeSleeper, retryable func(error) bool) utils.RetryPolicy {
	policy := utils.DefaultRetryPolicy(retryable)
	policy.Sleep = sleeper.sleep
	return policy
}

// scripted returns one scripted outcome per call: nil means success.
func scripted(calls *int, script []error) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		err := script[*calls]
		*calls++
		if err != nil {
			return "", err
		}
		return "ok", nil
	}
}

func TestRetryPolicy_OverloadThenSuccess(t *testing.T) {
	sleeper := &fakeSleeper{}
	policy := testPolicy(sleeper, func(error) bool { return true })

	calls := 0
	out, attempts, err := policy.Do(context.Background(), scripted(&calls, []error{errOverload, errOverload, nil}))

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeper.delays)
}

func TestRetryPolicy_ExhaustedRetries(t *testing.T) {
	sleeper := &fakeSleeper{}
	policy := testPolicy(sleeper, func(error) bool { return true })

	calls := 0
	_, attempts, err := policy.Do(context.Background(), scripted(&calls, []error{errOverload, errOverload, errOverload}))

	assert.ErrorIs(t, err, errOverload)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, calls)
	// No backoff after the final attempt.
	assert.Len(t, sleeper.delays, 2)
}

func TestRetryPolicy_PermanentErrorFailsImmediately(t *testing.T) {
	sleeper := &fakeSleeper{}
	policy := testPolicy(sleeper, func(err error) bool { return !errors.Is(err, errPermanent) })

	calls := 0
	_, attempts, err := policy.Do(context.Background(), scripted(&calls, []error{errPermanent}))

	assert.ErrorIs(t, err, errPermanent)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleeper.delays)
}

func TestRetryPolicy_FirstAttemptSuccessSkipsBackoff(t *testing.T) {
	sleeper := &fakeSleeper{}
	policy := testPolicy(sleeper, func(error) bool { return true })

	calls := 0
	out, attempts, err := policy.Do(context.Background(), scripted(&calls, []error{nil}))

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, sleeper.delays)
}
