package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()
	m := NewManager("super-secret", 7*24*time.Hour)
	userID := uuid.New()

	tok, err := m.Issue(userID)
	require.NoError(t, err)

	got, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerify_StillValidJustBeforeExpiry(t *testing.T) {
	t.Parallel()
	m := NewManager("super-secret", 2*time.Second)

	tok, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.NoError(t, err)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()
	m := NewManager("super-secret", -time.Minute)

	tok, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()
	issuer := NewManager("right-secret", time.Hour)
	verifier := NewManager("wrong-secret", time.Hour)

	tok, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()
	m := NewManager("super-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalid)
	}
}

func TestVerify_RejectsNonHMACAlgorithm(t *testing.T) {
	t.Parallel()
	m := NewManager("super-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_RejectsNonUUIDSubject(t *testing.T) {
	t.Parallel()
	secret := "super-secret"
	m := NewManager(secret, time.Hour)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := signed.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}
