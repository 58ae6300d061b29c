package auth

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexgrid/gridwear/internal/analytics"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []analytics.Event
}

func (n *recordingNotifier) Notify(e analytics.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) Events() []analytics.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]analytics.Event, len(n.events))
	copy(out, n.events)
	return out
}

func newTestService() (*Service, *recordingNotifier) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	notifier := &recordingNotifier{}
	verifier := NewSimulatedVerifier(0, time.Minute, "")
	return NewService(verifier, notifier, 0, log), notifier
}

func TestLogin(t *testing.T) {
	svc, notifier := newTestService()

	t.Run("Succeeds with any credentials", func(t *testing.T) {
		err := svc.Login(context.Background(), "driver@gridwear.dev", "pitlane66")
		require.NoError(t, err)
		assert.Empty(t, notifier.Events(), "login emits no analytics event")
	})

	t.Run("Requires email and password", func(t *testing.T) {
		assert.ErrorIs(t, svc.Login(context.Background(), "", "pw"), ErrEmailRequired)
		assert.ErrorIs(t, svc.Login(context.Background(), "a@b.c", ""), ErrPasswordRequired)
	})
}

func TestLoginHonorsCancellation(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewService(NewSimulatedVerifier(0, 0, ""), &recordingNotifier{}, time.Minute, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, svc.Login(ctx, "driver@gridwear.dev", "pw"), context.Canceled)
}

func TestSignup(t *testing.T) {
	svc, notifier := newTestService()

	form := SignupForm{
		FirstName: "Niki",
		LastName:  "Lauda",
		Email:     "niki@gridwear.dev",
		Password:  "pitlane66",
	}

	t.Run("Rejects mismatched passwords before the delay", func(t *testing.T) {
		err := svc.Signup(context.Background(), form, "different")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
		assert.Empty(t, notifier.Events())
	})

	t.Run("Reports signup to analytics", func(t *testing.T) {
		require.NoError(t, svc.Signup(context.Background(), form, form.Password))

		events := notifier.Events()
		require.Len(t, events, 1)
		assert.Equal(t, analytics.ActionSignup, events[0].Action)
		assert.Equal(t, "niki@gridwear.dev", events[0].Email)
		assert.Equal(t, "Niki", events[0].FirstName)
		assert.Equal(t, "Lauda", events[0].LastName)
	})
}

func TestCompleteReset(t *testing.T) {
	svc, notifier := newTestService()

	flow := svc.NewResetFlow()
	ch, err := flow.SubmitEmail(context.Background(), "driver@gridwear.dev")
	require.NoError(t, err)
	require.NoError(t, flow.SubmitCode(ch.Code))

	t.Run("Mismatch emits nothing", func(t *testing.T) {
		err := svc.CompleteReset(flow, "newpass1", "newpass2")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
		assert.Empty(t, notifier.Events())
	})

	t.Run("Completion reports password_reset", func(t *testing.T) {
		require.NoError(t, svc.CompleteReset(flow, "newpass1", "newpass1"))
		assert.Equal(t, StepDone, flow.Step())

		events := notifier.Events()
		require.Len(t, events, 1)
		assert.Equal(t, analytics.ActionPasswordReset, events[0].Action)
		assert.Equal(t, "driver@gridwear.dev", events[0].Email)
	})
}
