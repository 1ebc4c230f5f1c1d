package jwtutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtutil "booking-backend/app/jwt"
)

func newSigner(expMin int) *jwtutil.Signer {
	return &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "booking-backend", ExpMin: expMin}
}

func TestSignParseRoundTrip(t *testing.T) {
	s := newSigner(60)
	token, err := s.Sign(42, "user")
	require.NoError(t, err)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "booking-backend", claims.Issuer)
}

func TestParseExpired(t *testing.T) {
	s := newSigner(-1)
	token, err := s.Sign(42, "user")
	require.NoError(t, err)

	_, err = s.Parse(token)
	assert.Error(t, err, "a well-formed token past its expiry must fail")
}

func TestParseTamperedSignature(t *testing.T) {
	s := newSigner(60)
	token, err := s.Sign(42, "user")
	require.NoError(t, err)

	other := &jwtutil.Signer{Secret: []byte("different-secret"), Issuer: "booking-backend", ExpMin: 60}
	_, err = other.Parse(token)
	assert.Error(t, err, "a token signed with another key must fail regardless of expiry")
}

func TestParseGarbage(t *testing.T) {
	s := newSigner(60)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := s.Parse(tok)
		assert.Error(t, err, "token %q", tok)
	}
}
