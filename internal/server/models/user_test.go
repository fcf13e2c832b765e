package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PayloadExcludesPasswordHash(t *testing.T) {
	u := &User{ID: "u-1", Email: "a@x.com", Name: "A", PasswordHash: "$2a$10$hash"}

	b, err := json.Marshal(AuthResult{User: u.Payload(), Token: "t"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"user":{"id":"u-1","email":"a@x.com","name":"A"},"token":"t"}`, string(b))
	assert.NotContains(t, string(b), "hash")
}
