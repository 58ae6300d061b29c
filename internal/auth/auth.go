package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apexgrid/gridwear/internal/config"
)

var (
	ErrInvalidCode      = errors.New("invalid verification code")
	ErrChallengeExpired = errors.New("verification code expired")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Challenge is an issued verification code. Token identifies the challenge;
// Code is only populated by the simulated verifier so demo clients can close
// the loop without a real delivery channel.
type Challenge struct {
	Token     string    `json:"token"`
	Code      string    `json:"code,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Verifier issues and checks one-time verification codes. Behind this
// interface a real delivery provider can replace the simulation without
// touching the reset flow.
type Verifier interface {
	SendCode(ctx context.Context, email string) (Challenge, error)
	Verify(token, code string) error
}

// NewVerifier creates a verifier based on configuration.
func NewVerifier(cfg *config.AuthConfig) (Verifier, error) {
	switch cfg.Provider {
	case "simulated", "":
		return NewSimulatedVerifier(cfg.SimulatedDelay, cfg.ChallengeTTL, cfg.FixedCode), nil
	default:
		return nil, fmt.Errorf("unsupported auth provider: %s", cfg.Provider)
	}
}
