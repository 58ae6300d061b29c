package auth

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/apexgrid/gridwear/internal/analytics"
)

// SignupForm is the data collected by the signup page.
type SignupForm struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Service runs the simulated login and signup flows: a fixed artificial
// delay, no real verification, and an analytics event on the way out. The
// delay stands in for a backend round trip the storefront does not have.
type Service struct {
	verifier Verifier
	notifier analytics.Notifier
	delay    time.Duration
	log      *logrus.Logger
}

// NewService creates the auth service.
func NewService(verifier Verifier, notifier analytics.Notifier, delay time.Duration, log *logrus.Logger) *Service {
	return &Service{
		verifier: verifier,
		notifier: notifier,
		delay:    delay,
		log:      log,
	}
}

// Login accepts any non-empty credentials after the simulated delay. There
// is no account store; authentication is an explicit non-goal.
func (s *Service) Login(ctx context.Context, email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.log.WithField("email", email).Info("login completed")
	return nil
}

// Signup accepts the form after the simulated delay and reports the signup
// to analytics. The password fields must match before anything runs.
func (s *Service) Signup(ctx context.Context, form SignupForm, confirmPassword string) error {
	if form.Email == "" {
		return ErrEmailRequired
	}
	if form.Password == "" {
		return ErrPasswordRequired
	}
	if form.Password != confirmPassword {
		return ErrPasswordMismatch
	}
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.notifier.Notify(analytics.Event{
		Email:     form.Email,
		Action:    analytics.ActionSignup,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	s.log.WithField("email", form.Email).Info("signup completed")
	return nil
}

// NewResetFlow starts a password-reset flow bound to this service's
// verifier. Completion is reported to analytics.
func (s *Service) NewResetFlow() *ResetFlow {
	return NewResetFlow(s.verifier)
}

// CompleteReset finishes a reset flow with the new password and reports the
// reset to analytics.
func (s *Service) CompleteReset(flow *ResetFlow, password, confirm string) error {
	if err := flow.SubmitPassword(password, confirm); err != nil {
		return err
	}
	s.notifier.Notify(analytics.Event{
		Email:  flow.Email(),
		Action: analytics.ActionPasswordReset,
	})
	s.log.WithField("email", flow.Email()).Info("password reset completed")
	return nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
