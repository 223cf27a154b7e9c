package conversation

import (
	"context"
	"fmt"

	"github.com/robot-coder/converso-multimodal/pkg/llm"
)

// MediaStore is the port for persisting an attachment and obtaining its
// locator.
type MediaStore interface {
	Save(ctx context.Context, data []byte, originalName string) (string, error)
}

// UseCase covers the conversation-facing scenarios.
type UseCase interface {
	Start(ctx context.Context, theme string) (string, error)
	Send(ctx context.Context, in SendInput) (SendResult, error)
	Get(ctx context.Context, id string) (Conversation, error)
	List(ctx context.Context, limit, offset int) ([]Summary, error)
}

// SendInput carries one user turn. Media is optional; when empty no upload
// happens.
type SendInput struct {
	ConversationID string
	Text           string
	Backend        string
	Media          []byte
	MediaName      string
}

type SendResult struct {
	Response       string
	ConversationID string
}

type service struct {
	store     Store
	media     MediaStore
	registry  *llm.Registry
	completer llm.Completer
}

func NewService(store Store, media MediaStore, registry *llm.Registry, completer llm.Completer) UseCase {
	return &service{store: store, media: media, registry: registry, completer: completer}
}

func (s *service) Start(ctx context.Context, theme string) (string, error) {
	return s.store.Create(theme), nil
}

// Send runs one full turn: upload media if present, record the user message,
// relay the rendered history to the chosen backend, record the reply.
//
// Ordering matters: the conversation is validated before the media write so a
// bogus id cannot orphan an upload, and a failed media write aborts the whole
// turn without recording anything. A backend failure after the user message
// is appended leaves that message in place; the user's turn happened even if
// the assistant's did not.
func (s *service) Send(ctx context.Context, in SendInput) (SendResult, error) {
	if _, err := s.store.Get(in.ConversationID); err != nil {
		return SendResult{}, err
	}

	mediaURL := ""
	if len(in.Media) > 0 {
		url, err := s.media.Save(ctx, in.Media, in.MediaName)
		if err != nil {
			return SendResult{}, err
		}
		mediaURL = url
	}

	userMsg := Message{Role: RoleUser, Content: in.Text, MediaURL: mediaURL}
	if err := s.store.Append(in.ConversationID, userMsg); err != nil {
		return SendResult{}, err
	}

	conv, err := s.store.Get(in.ConversationID)
	if err != nil {
		return SendResult{}, err
	}
	prompt := RenderPrompt(conv.Messages)

	endpoint := s.registry.Resolve(in.Backend)
	reply, err := s.completer.Complete(ctx, endpoint, prompt)
	if err != nil {
		return SendResult{}, fmt.Errorf("complete via %q: %w", in.Backend, err)
	}

	if err := s.store.Append(in.ConversationID, Message{Role: RoleAssistant, Content: reply}); err != nil {
		return SendResult{}, err
	}
	return SendResult{Response: reply, ConversationID: in.ConversationID}, nil
}

func (s *service) Get(ctx context.Context, id string) (Conversation, error) {
	return s.store.Get(id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Summary, error) {
	return s.store.List(limit, offset), nil
}
