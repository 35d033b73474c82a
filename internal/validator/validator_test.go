package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,account_role"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	details := Struct(sampleRequest{Username: "ab", Email: "nope", Role: "investor"})

	assert.Contains(t, details, "username")
	assert.Contains(t, details, "email")
	assert.NotContains(t, details, "Username")
}

func TestStructPassesValidInput(t *testing.T) {
	details := Struct(sampleRequest{Username: "alice", Email: "alice@example.com", Role: "investor"})
	assert.Nil(t, details)
}

func TestAccountRoleRule(t *testing.T) {
	for _, role := range []string{"investor", "institutional", "partner", "admin"} {
		details := Struct(sampleRequest{Username: "alice", Email: "a@example.com", Role: role})
		assert.Nil(t, details, "role %q should validate", role)
	}

	details := Struct(sampleRequest{Username: "alice", Email: "a@example.com", Role: "superuser"})
	assert.Contains(t, details, "role")
}
