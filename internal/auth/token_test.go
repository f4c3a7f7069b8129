package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edunova/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newService(t *testing.T, secret string, clock *fakeClock) *TokenService {
	t.Helper()
	s, err := NewTokenService(secret, WithClock(clock.Now))
	require.NoError(t, err)
	return s
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("  ")
	require.Error(t, err)
}

func TestIssueAndResolve(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	s := newService(t, "secret", clock)

	tok, exp, err := s.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, clock.t.Add(24*time.Hour), exp)

	id, err := s.Resolve(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	id, err = s.Resolve("Bearer " + tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	id, err = s.Resolve("bearer   " + tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestResolve_ExpiryBoundary(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	s := newService(t, "secret", clock)

	tok, exp, err := s.Issue(7)
	require.NoError(t, err)

	clock.t = exp.Add(-time.Second)
	_, err = s.Resolve(tok)
	require.NoError(t, err)

	clock.t = exp
	_, err = s.Resolve(tok)
	require.ErrorIs(t, err, domain.ErrExpiredToken)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	clock.t = exp.Add(time.Hour)
	_, err = s.Resolve(tok)
	require.ErrorIs(t, err, domain.ErrExpiredToken)
}

func TestResolve_Failures(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	s := newService(t, "right-secret", clock)
	other := newService(t, "wrong-secret", clock)

	foreign, _, err := other.Issue(1)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour))},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1})
	noExpiryTok, err := noExpiry.SignedString([]byte("right-secret"))
	require.NoError(t, err)

	mine, _, err := s.Issue(1)
	require.NoError(t, err)
	theirs, _, err := s.Issue(2)
	require.NoError(t, err)
	a, b := strings.Split(mine, "."), strings.Split(theirs, ".")
	tampered := a[0] + "." + b[1] + "." + a[2]

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "", want: domain.ErrMissingToken},
		{name: "bare bearer", token: "Bearer ", want: domain.ErrMissingToken},
		{name: "bearer without space", token: "bearer", want: domain.ErrMissingToken},
		{name: "bearer with tabs", token: "\tBEARER \t ", want: domain.ErrMissingToken},
		{name: "malformed", token: "not.a.jwt", want: domain.ErrInvalidToken},
		{name: "wrong secret", token: foreign, want: domain.ErrInvalidToken},
		{name: "alg none", token: unsigned, want: domain.ErrInvalidToken},
		{name: "no expiry", token: noExpiryTok, want: domain.ErrInvalidToken},
		{name: "tampered payload", token: tampered, want: domain.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Resolve(tt.token)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestWithTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	s, err := NewTokenService("secret", WithClock(clock.Now), WithTTL(time.Hour))
	require.NoError(t, err)

	_, exp, err := s.Issue(1)
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(time.Hour), exp)
}
