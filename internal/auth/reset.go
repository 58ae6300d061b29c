package auth

import (
	"context"
	"errors"
	"sync"
)

// ResetStep is one stage of the password-reset flow.
type ResetStep string

const (
	StepEmail ResetStep = "email"
	StepOTP   ResetStep = "otp"
	StepReset ResetStep = "reset"
	StepDone  ResetStep = "done"
)

// ErrWrongStep is returned when a reset operation is attempted out of order.
var ErrWrongStep = errors.New("operation not valid in current reset step")

// ResetFlow is the three-step password-reset machine: email, then code
// verification, then the new password. Progression is strictly forward, with
// one exception: from the otp step the flow may return to the email step so
// the code can be resent. There is no way back from the reset step.
//
// ResetFlow is safe for concurrent use. Code delivery can block for the
// provider's delivery delay, so SubmitEmail sends without holding the flow's
// lock and only commits the step transition once the send succeeds; callers
// never need an outer lock around flow operations.
type ResetFlow struct {
	verifier Verifier

	mu    sync.Mutex
	step  ResetStep
	email string
	token string
}

// NewResetFlow returns a flow at the email step.
func NewResetFlow(verifier Verifier) *ResetFlow {
	return &ResetFlow{verifier: verifier, step: StepEmail}
}

// Step returns the current stage.
func (f *ResetFlow) Step() ResetStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Email returns the address the flow was started with.
func (f *ResetFlow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// SubmitEmail sends a verification code to the address and advances to the
// otp step. The returned challenge carries the simulated code when the
// simulated verifier is in use.
//
// The send happens outside the lock; if another request moves the flow off
// the email step in the meantime, the transition is abandoned and
// ErrWrongStep is returned.
func (f *ResetFlow) SubmitEmail(ctx context.Context, email string) (Challenge, error) {
	if email == "" {
		return Challenge{}, ErrEmailRequired
	}

	f.mu.Lock()
	if f.step != StepEmail {
		f.mu.Unlock()
		return Challenge{}, ErrWrongStep
	}
	f.mu.Unlock()

	ch, err := f.verifier.SendCode(ctx, email)
	if err != nil {
		return Challenge{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepEmail {
		return Challenge{}, ErrWrongStep
	}
	f.email = email
	f.token = ch.Token
	f.step = StepOTP
	return ch, nil
}

// Resend steps back to the email stage so a fresh code can be requested.
// Only valid from the otp step.
func (f *ResetFlow) Resend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepOTP {
		return ErrWrongStep
	}
	f.step = StepEmail
	f.token = ""
	return nil
}

// SubmitCode verifies the entered code and advances to the reset step.
// A wrong or expired code leaves the flow at the otp step.
func (f *ResetFlow) SubmitCode(code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepOTP {
		return ErrWrongStep
	}
	if err := f.verifier.Verify(f.token, code); err != nil {
		return err
	}
	f.step = StepReset
	return nil
}

// SubmitPassword accepts the new password once both fields match, completing
// the flow.
func (f *ResetFlow) SubmitPassword(password, confirm string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepReset {
		return ErrWrongStep
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	f.step = StepDone
	return nil
}
