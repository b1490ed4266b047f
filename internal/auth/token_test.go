// ABOUTME: Unit tests for the session token codec
// ABOUTME: Covers claim round-trips, expiry, tampering and malformed tokens

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicevents/crm/internal/store"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-key-for-jwt-signing"))

	token, err := codec.Issue(42, store.DepartmentCommercial, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.EmployeeID)
	assert.Equal(t, store.DepartmentCommercial, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestTokenCodec_AllDepartments(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-key-for-jwt-signing"))

	for _, dept := range store.ValidDepartments {
		token, err := codec.Issue(7, dept, time.Hour)
		require.NoError(t, err)

		claims, err := codec.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, dept, claims.Role)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-key-for-jwt-signing"))

	// Issued already expired
	token, err := codec.Issue(42, store.DepartmentSupport, -time.Second)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-key-for-jwt-signing"))

	token, err := codec.Issue(42, store.DepartmentSupport, time.Hour)
	require.NoError(t, err)

	// Flip one character of the signature segment
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-key-for-jwt-signing"))
	other := NewTokenCodec([]byte("a-completely-different-secret"))

	token, err := other.Issue(42, store.DepartmentSupport, time.Hour)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-key-for-jwt-signing"))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not-a-jwt-token"},
		{name: "malformed JWT", token: "header.payload.signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestTokenCodec_ExpiredBeatsTampering(t *testing.T) {
	// An expired token must decode to expired, never to success, and a
	// tampered expired token is still rejected.
	codec := NewTokenCodec([]byte("test-secret-key-for-jwt-signing"))

	token, err := codec.Issue(42, store.DepartmentCommercial, -time.Hour)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	tampered := strings.TrimSuffix(token, token[len(token)-2:]) + "xx"
	_, err = codec.Decode(tampered)
	assert.Error(t, err)
	assert.NotNil(t, err)
}
