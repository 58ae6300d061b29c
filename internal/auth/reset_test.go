package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedFlow(t *testing.T) (*ResetFlow, Challenge) {
	t.Helper()
	flow := NewResetFlow(NewSimulatedVerifier(0, time.Minute, ""))
	ch, err := flow.SubmitEmail(context.Background(), "driver@gridwear.dev")
	require.NoError(t, err)
	require.Equal(t, StepOTP, flow.Step())
	return flow, ch
}

func TestResetFlowHappyPath(t *testing.T) {
	flow, ch := startedFlow(t)

	require.NoError(t, flow.SubmitCode(ch.Code))
	assert.Equal(t, StepReset, flow.Step())

	require.NoError(t, flow.SubmitPassword("pitlane66", "pitlane66"))
	assert.Equal(t, StepDone, flow.Step())
}

func TestResetFlowStartsAtEmail(t *testing.T) {
	flow := NewResetFlow(NewSimulatedVerifier(0, time.Minute, ""))
	assert.Equal(t, StepEmail, flow.Step())

	_, err := flow.SubmitEmail(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.Equal(t, StepEmail, flow.Step())
}

func TestResetFlowWrongCodeStaysAtOTP(t *testing.T) {
	flow, ch := startedFlow(t)

	err := flow.SubmitCode(ch.Code + "x")
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Equal(t, StepOTP, flow.Step())
}

func TestResetFlowResend(t *testing.T) {
	flow, _ := startedFlow(t)

	require.NoError(t, flow.Resend())
	assert.Equal(t, StepEmail, flow.Step())

	// A fresh code can be requested after stepping back.
	ch, err := flow.SubmitEmail(context.Background(), "driver@gridwear.dev")
	require.NoError(t, err)
	require.NoError(t, flow.SubmitCode(ch.Code))
}

func TestResetFlowPasswordMismatch(t *testing.T) {
	flow, ch := startedFlow(t)
	require.NoError(t, flow.SubmitCode(ch.Code))

	err := flow.SubmitPassword("pitlane66", "pitlane67")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Equal(t, StepReset, flow.Step())
}

// gateVerifier blocks the first SendCode until released, so a test can
// overlap a slow delivery with other flow operations.
type gateVerifier struct {
	gate chan struct{}

	mu      sync.Mutex
	calls   int
	started chan struct{}
}

func newGateVerifier() *gateVerifier {
	return &gateVerifier{
		gate:    make(chan struct{}),
		started: make(chan struct{}),
	}
}

func (v *gateVerifier) SendCode(ctx context.Context, email string) (Challenge, error) {
	v.mu.Lock()
	v.calls++
	n := v.calls
	v.mu.Unlock()

	if n == 1 {
		close(v.started)
		<-v.gate
	}
	return Challenge{Token: fmt.Sprintf("token-%d", n), Code: "111111"}, nil
}

func (v *gateVerifier) Verify(token, code string) error {
	if token == "token-2" && code == "111111" {
		return nil
	}
	return ErrInvalidCode
}

func TestSubmitEmailAbandonsStaleDelivery(t *testing.T) {
	verifier := newGateVerifier()
	flow := NewResetFlow(verifier)

	// First submit stalls inside code delivery.
	firstErr := make(chan error, 1)
	go func() {
		_, err := flow.SubmitEmail(context.Background(), "driver@gridwear.dev")
		firstErr <- err
	}()
	<-verifier.started

	// A second submit wins the flow while the first is still in flight.
	ch, err := flow.SubmitEmail(context.Background(), "driver@gridwear.dev")
	require.NoError(t, err)
	require.Equal(t, StepOTP, flow.Step())

	// The stale delivery must not clobber the committed transition.
	close(verifier.gate)
	assert.ErrorIs(t, <-firstErr, ErrWrongStep)
	assert.Equal(t, StepOTP, flow.Step())

	require.NoError(t, flow.SubmitCode(ch.Code), "the winning challenge stays valid")
}

func TestResetFlowConcurrentSendAndResend(t *testing.T) {
	flow := NewResetFlow(NewSimulatedVerifier(time.Millisecond, time.Minute, "111111"))

	// Interleave submits, resends and code checks on one flow. Individual
	// calls may fail with ErrWrongStep; the flow itself must stay coherent.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, _ = flow.SubmitEmail(context.Background(), "driver@gridwear.dev")
				_ = flow.Resend()
				_ = flow.SubmitCode("000000")
				_ = flow.Step()
			}
		}()
	}
	wg.Wait()

	step := flow.Step()
	assert.Contains(t, []ResetStep{StepEmail, StepOTP}, step)
}

func TestResetFlowStepGating(t *testing.T) {
	flow, ch := startedFlow(t)

	t.Run("No email submit from otp", func(t *testing.T) {
		_, err := flow.SubmitEmail(context.Background(), "other@gridwear.dev")
		assert.ErrorIs(t, err, ErrWrongStep)
	})

	t.Run("No password submit from otp", func(t *testing.T) {
		assert.ErrorIs(t, flow.SubmitPassword("a", "a"), ErrWrongStep)
	})

	require.NoError(t, flow.SubmitCode(ch.Code))

	t.Run("No resend from reset", func(t *testing.T) {
		assert.ErrorIs(t, flow.Resend(), ErrWrongStep)
	})

	t.Run("No code submit from reset", func(t *testing.T) {
		assert.ErrorIs(t, flow.SubmitCode(ch.Code), ErrWrongStep)
	})
}
