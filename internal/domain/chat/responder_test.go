package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespond_KeywordRules(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{
			name:     "password keyword",
			message:  "I forgot my password",
			contains: "Forgot Password",
		},
		{
			name:     "reset keyword",
			message:  "how do I RESET my credentials",
			contains: "Forgot Password",
		},
		{
			name:     "billing keyword",
			message:  "question about billing",
			contains: "Settings > Billing",
		},
		{
			name:     "payment keyword",
			message:  "my payment failed",
			contains: "Settings > Billing",
		},
		{
			name:     "slow keyword",
			message:  "the app is very slow today",
			contains: "Performance issues",
		},
		{
			name:     "performance keyword",
			message:  "performance is terrible",
			contains: "Performance issues",
		},
		{
			name:     "human keyword",
			message:  "I want to talk to a human",
			contains: "human agent",
		},
		{
			name:     "agent keyword",
			message:  "connect me with an agent please",
			contains: "human agent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Respond(tt.message), tt.contains)
		})
	}
}

func TestRespond_MatchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Respond("password"), Respond("PASSWORD"))
}

func TestRespond_FirstRuleWins(t *testing.T) {
	// Message matches both the password and billing rules; the password
	// rule comes first.
	response := Respond("password problem on my billing page")

	assert.Contains(t, response, "Forgot Password")
	assert.NotContains(t, response, "Settings > Billing")
}

func TestRespond_DefaultEchoesMessage(t *testing.T) {
	message := "my widget is broken"
	response := Respond(message)

	assert.True(t, strings.HasPrefix(response, "I understand you need help with: my widget is broken."))
	assert.Contains(t, response, "knowledge base")
}
