package models

// Message is a single chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries everything one completion call needs. Model may
// be empty, in which case the provider falls back to the configured default.
type CompletionRequest struct {
	Messages    []Message
	Model       string
	Temperature float32
	MaxTokens   int
}

// UserMessage wraps a single user prompt into a message slice.
func UserMessage(content string) []Message {
	return []Message{{Role: "user", Content: content}}
}
