package auth

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SimulatedVerifier fakes a code-delivery provider: it waits a configurable
// artificial delay, then hands the code straight back in the challenge
// instead of delivering it anywhere. Codes are random six digits unless a
// fixed demo code is configured.
type SimulatedVerifier struct {
	delay     time.Duration
	ttl       time.Duration
	fixedCode string

	mu         sync.Mutex
	challenges map[string]Challenge
	now        func() time.Time
	intn       func(n int) int
}

// NewSimulatedVerifier creates a simulated verifier. A zero ttl means codes
// never expire; fixedCode overrides random code generation when non-empty.
func NewSimulatedVerifier(delay, ttl time.Duration, fixedCode string) *SimulatedVerifier {
	return &SimulatedVerifier{
		delay:      delay,
		ttl:        ttl,
		fixedCode:  fixedCode,
		challenges: make(map[string]Challenge),
		now:        time.Now,
		intn:       rand.Intn,
	}
}

// SendCode issues a new challenge for the email after the simulated delivery
// delay. The delay honors context cancellation.
func (v *SimulatedVerifier) SendCode(ctx context.Context, email string) (Challenge, error) {
	if email == "" {
		return Challenge{}, ErrEmailRequired
	}

	if v.delay > 0 {
		select {
		case <-time.After(v.delay):
		case <-ctx.Done():
			return Challenge{}, ctx.Err()
		}
	}

	code := v.fixedCode
	if code == "" {
		v.mu.Lock()
		code = fmt.Sprintf("%06d", v.intn(1000000))
		v.mu.Unlock()
	}

	ch := Challenge{
		Token: uuid.NewString(),
		Code:  code,
	}
	if v.ttl > 0 {
		ch.ExpiresAt = v.now().Add(v.ttl)
	}

	v.mu.Lock()
	v.challenges[ch.Token] = ch
	v.mu.Unlock()

	return ch, nil
}

// Verify checks the code against the outstanding challenge for the token.
// A successful check consumes the challenge; a second attempt with the same
// token fails.
func (v *SimulatedVerifier) Verify(token, code string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	ch, ok := v.challenges[token]
	if !ok {
		return ErrInvalidCode
	}
	if !ch.ExpiresAt.IsZero() && v.now().After(ch.ExpiresAt) {
		delete(v.challenges, token)
		return ErrChallengeExpired
	}
	if ch.Code != code {
		return ErrInvalidCode
	}

	delete(v.challenges, token)
	return nil
}

// Compile-time interface check
var _ Verifier = (*SimulatedVerifier)(nil)
