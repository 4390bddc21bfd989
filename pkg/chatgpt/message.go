// Package chatgpt implements a minimal client for the OpenAI chat
// completions API and the conversation loop around it: an append-only
// role-tagged transcript, one HTTP request per turn, and single-shot or
// interactive modes.
package chatgpt

// Role values accepted in a conversation transcript.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultSystemPrompt seeds every new transcript unless overridden.
const DefaultSystemPrompt = "You are ChatGPT, a large language model trained by OpenAI."

// Message is a single entry in the conversation. Messages are never
// edited after construction, only appended to a transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewTranscript returns a fresh transcript whose first element is the
// system message. The system message stays at index 0 for the life of
// the conversation.
func NewTranscript(systemPrompt string) []Message {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return []Message{{Role: RoleSystem, Content: systemPrompt}}
}
