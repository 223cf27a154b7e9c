package conversation

import "strings"

// RenderPrompt flattens a message history into the linear prompt the relay
// backends expect: one "User: ..." or "Assistant: ..." line per message, in
// append order. Media locators are not part of the prompt.
func RenderPrompt(messages []Message) string {
	var b strings.Builder
	for _, msg := range messages {
		label := "Assistant"
		if msg.Role == RoleUser {
			label = "User"
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	return b.String()
}
