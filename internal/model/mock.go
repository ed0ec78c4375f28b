package model

import (
	"context"
	"strings"
)

// MockClient is a deterministic stand-in for local development and
// tests. Enabled with MODEL_USE_MOCK=1.
type MockClient struct{}

// NewMockClient returns the mock model client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Generate returns a canned coaching-flavored reply keyed off the
// detected intent line in the prompt, so mock conversations still feel
// roughly on-topic.
func (m *MockClient) Generate(_ context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "detected intent: greeting"):
		return "Hi! Welcome to Summit Coaching. What brought you here today? - Dana, Summit Coaching", nil
	case strings.Contains(prompt, "detected intent: pricing"):
		return "Packages start at $450/month, and every engagement begins with a free discovery call. - Dana, Summit Coaching", nil
	case strings.Contains(prompt, "detected intent: booking"):
		return "I'd love to set that up - you can book a free 30-minute discovery call anytime. - Dana, Summit Coaching", nil
	default:
		return "That's a great question. Tell me a bit more about where you are right now? - Dana, Summit Coaching", nil
	}
}
