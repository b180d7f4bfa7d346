package plaid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_BaseURL(t *testing.T) {
	tests := []struct {
		name     string
		env      Environment
		expected string
	}{
		{"sandbox", Sandbox, "https://sandbox.plaid.com"},
		{"development", Development, "https://development.plaid.com"},
		{"production", Production, "https://production.plaid.com"},
		{"zero value defaults to sandbox", Environment(""), "https://sandbox.plaid.com"},
		{"custom", CustomEnvironment("http://localhost:3000"), "http://localhost:3000"},
		{"custom with trailing slash", CustomEnvironment("http://localhost:3000/"), "http://localhost:3000"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.env.BaseURL())
		})
	}
}
