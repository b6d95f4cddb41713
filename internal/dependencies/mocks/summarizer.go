package mocks

import "context"

// MockSummarizer is a scripted summarizer for testing the insight pipeline
type MockSummarizer struct {
	// Response is returned from Summarize when Err is nil
	Response string
	// Err, when set, is returned from every Summarize call
	Err error
	// Prompts records every prompt passed in, for assertions
	Prompts []string
}

// NewMockSummarizer creates a MockSummarizer returning the given text
func NewMockSummarizer(response string) *MockSummarizer {
	return &MockSummarizer{Response: response}
}

// Summarize returns the scripted response or error
func (m *MockSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
