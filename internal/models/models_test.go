package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	valid := RegisterRequest{Username: "alice-01", Email: "a@b.c", Password: "p"}
	assert.NoError(t, valid.Validate())

	cases := map[string]RegisterRequest{
		"missing username": {Email: "a@b.c", Password: "p"},
		"missing email":    {Username: "alice", Password: "p"},
		"missing password": {Username: "alice", Email: "a@b.c"},
		"bad characters":   {Username: "al ice", Email: "a@b.c", Password: "p"},
		"too long":         {Username: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Email: "a@b.c", Password: "p"},
	}
	for name, req := range cases {
		var vErr *ValidationError
		assert.ErrorAs(t, req.Validate(), &vErr, name)
	}
}

func TestPostRequestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&PostRequest{PhotoHash: "abc"}).Validate())

	var vErr *ValidationError
	assert.ErrorAs(t, (&PostRequest{Title: "no photo"}).Validate(), &vErr)
	assert.Equal(t, "photo_hash", vErr.Field)
}
