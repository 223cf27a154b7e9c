package conversation

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation. Immutable once appended.
type Message struct {
	Role     Role   `json:"role"`
	Content  string `json:"content"`
	MediaURL string `json:"media_url,omitempty"`
}

// Conversation is an append-only sequence of messages with an optional theme.
type Conversation struct {
	ID        string    `json:"id"`
	Theme     string    `json:"theme,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Messages  []Message `json:"messages"`
}

// Summary is a light projection used by listings.
type Summary struct {
	ID           string    `json:"id"`
	Theme        string    `json:"theme,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	MessageCount int       `json:"message_count"`
}
