package chat

import (
	"fmt"
	"strings"
)

// responseRule maps message keywords to a fixed answer. Rules are evaluated
// in order; the first rule with a matching keyword wins.
type responseRule struct {
	keywords []string
	response string
}

// Rule order is part of the assistant's observable behavior and must not be
// reordered: a message containing both "password" and "billing" answers with
// the password template.
var responseRules = []responseRule{
	{
		keywords: []string{"password", "reset"},
		response: "To reset your password, go to the login page and click 'Forgot Password'. Enter your email and follow the instructions sent to you. The reset link is valid for 24 hours.",
	},
	{
		keywords: []string{"billing", "payment"},
		response: "For billing questions, you can update your payment information in Settings > Billing. If you're experiencing payment issues, please check that your card information is current and try again.",
	},
	{
		keywords: []string{"slow", "performance"},
		response: "Performance issues can be caused by network connectivity, browser cache, or server load. Try clearing your browser cache, using a different browser, or checking your internet connection.",
	},
	{
		keywords: []string{"human", "agent"},
		response: "I'd be happy to connect you with a human agent. You can create a support ticket by clicking 'New Ticket' in the sidebar, and our team will respond within 2-4 hours.",
	},
}

// Respond synthesizes the assistant's answer for a message. It is a pure
// function of its input: no state, no external calls.
func Respond(message string) string {
	lower := strings.ToLower(message)

	for _, rule := range responseRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.response
			}
		}
	}

	return fmt.Sprintf("I understand you need help with: %s. Let me search our knowledge base for relevant information. If I can't find a solution, I'll connect you with a human agent who can assist further.", message)
}
