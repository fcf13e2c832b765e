package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayload = models.TokenPayload{ID: "u-1", Email: "a@x.com", Name: "A"}

func TestNewJWTIssuer_DefaultValidity(t *testing.T) {
	assert.Equal(t, DefaultTokenValidity, NewJWTIssuer([]byte("k"), 0).validityDuration)
	assert.Equal(t, time.Hour, NewJWTIssuer([]byte("k"), time.Hour).validityDuration)
}

func TestIssue_Claims(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), DefaultTokenValidity)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }

	tokenString, err := issuer.Issue(testPayload)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixed }))
	require.NoError(t, err)

	assert.Equal(t, "u-1", claims.Subject)
	assert.True(t, fixed.Equal(claims.IssuedAt.Time))
	assert.True(t, fixed.Add(24*time.Hour).Equal(claims.ExpiresAt.Time))
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "A", claims.Name)
}

func TestIssue_DistinctTokensForSamePayload(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), time.Hour)

	a, err := issuer.Issue(testPayload)
	require.NoError(t, err)
	b, err := issuer.Issue(testPayload)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerify_RoundTripStripsReservedClaims(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), time.Hour)

	tokenString, err := issuer.Issue(testPayload)
	require.NoError(t, err)

	got, err := issuer.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, testPayload, got)

	// Re-issuing the recovered payload must yield the same identity claims.
	again, err := issuer.Issue(got)
	require.NoError(t, err)
	got2, err := issuer.Verify(again)
	require.NoError(t, err)
	assert.Equal(t, testPayload, got2)
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tokenString, err := issuer.Issue(testPayload)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(tokenString)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	tokenString, err := NewJWTIssuer([]byte("secret-key-1"), time.Hour).Issue(testPayload)
	require.NoError(t, err)

	_, err = NewJWTIssuer([]byte("secret-key-2"), time.Hour).Verify(tokenString)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_TamperedPayload(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), time.Hour)
	tokenString, err := issuer.Issue(testPayload)
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	body := []byte(parts[1])
	i := len(body) / 2
	if body[i] == 'A' {
		body[i] = 'B'
	} else {
		body[i] = 'A'
	}
	tampered := parts[0] + "." + string(body) + "." + parts[2]

	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "u-1",
	})
	tokenString, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTIssuer([]byte("test-secret"), time.Hour).Verify(tokenString)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u-1"})
	tokenString, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTIssuer([]byte("test-secret"), time.Hour).Verify(tokenString)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), time.Hour)

	for _, s := range []string{"", "not-a-valid-token", "a.b.c"} {
		_, err := issuer.Verify(s)
		assert.ErrorIs(t, err, common.ErrInvalidToken, "token %q", s)
	}
}

func TestIssue_NoPasswordMaterialInToken(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), time.Hour)
	tokenString, err := issuer.Issue(testPayload)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(strings.Split(tokenString, ".")[1])
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"id", "email", "name", "sub", "iat", "exp", "jti"}, keys)
}
