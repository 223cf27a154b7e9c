package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/robot-coder/converso-multimodal/pkg/llm"
)

type fakeCompleter struct {
	reply     string
	err       error
	endpoints []string
	prompts   []string
}

func (f *fakeCompleter) Complete(ctx context.Context, endpoint, prompt string) (string, error) {
	f.endpoints = append(f.endpoints, endpoint)
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeMedia struct {
	locator string
	err     error
	calls   int
}

func (f *fakeMedia) Save(ctx context.Context, data []byte, originalName string) (string, error) {
	f.calls++
	return f.locator, f.err
}

func newTestRegistry(t *testing.T) *llm.Registry {
	t.Helper()
	reg, err := llm.NewRegistry(map[string]string{
		"model_a": "http://a.test/llm",
		"model_b": "http://b.test/llm",
	}, "model_a")
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return reg
}

func TestSend_SuccessAppendsBothTurns(t *testing.T) {
	store := NewMemoryStore()
	completer := &fakeCompleter{reply: "hello there"}
	svc := NewService(store, &fakeMedia{}, newTestRegistry(t), completer)

	id, _ := svc.Start(context.Background(), "")
	res, err := svc.Send(context.Background(), SendInput{ConversationID: id, Text: "hi", Backend: "model_b"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if res.Response != "hello there" {
		t.Errorf("Expected reply 'hello there', got %q", res.Response)
	}
	if res.ConversationID != id {
		t.Errorf("Expected conversation id %q, got %q", id, res.ConversationID)
	}

	conv, _ := store.Get(id)
	if len(conv.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(conv.Messages))
	}
	if conv.Messages[0].Role != RoleUser || conv.Messages[0].Content != "hi" {
		t.Errorf("Unexpected user message: %+v", conv.Messages[0])
	}
	if conv.Messages[1].Role != RoleAssistant || conv.Messages[1].Content != "hello there" {
		t.Errorf("Unexpected assistant message: %+v", conv.Messages[1])
	}
	if completer.prompts[0] != "User: hi\n" {
		t.Errorf("Expected prompt 'User: hi\\n', got %q", completer.prompts[0])
	}
	if completer.endpoints[0] != "http://b.test/llm" {
		t.Errorf("Expected model_b endpoint, got %q", completer.endpoints[0])
	}
}

func TestSend_UnknownBackendFallsBackToDefault(t *testing.T) {
	store := NewMemoryStore()
	completer := &fakeCompleter{reply: "ok"}
	svc := NewService(store, &fakeMedia{}, newTestRegistry(t), completer)

	id, _ := svc.Start(context.Background(), "")
	if _, err := svc.Send(context.Background(), SendInput{ConversationID: id, Text: "hi", Backend: "model_z"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if completer.endpoints[0] != "http://a.test/llm" {
		t.Errorf("Expected fallback to default endpoint, got %q", completer.endpoints[0])
	}
}

func TestSend_UnknownConversation(t *testing.T) {
	media := &fakeMedia{}
	svc := NewService(NewMemoryStore(), media, newTestRegistry(t), &fakeCompleter{})

	_, err := svc.Send(context.Background(), SendInput{
		ConversationID: "missing",
		Text:           "hi",
		Media:          []byte("bytes"),
		MediaName:      "cat.png",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if media.calls != 0 {
		t.Errorf("Media was uploaded for an unknown conversation (%d calls)", media.calls)
	}
}

func TestSend_MediaFailureAbortsWholeTurn(t *testing.T) {
	store := NewMemoryStore()
	media := &fakeMedia{err: errors.New("disk full")}
	completer := &fakeCompleter{reply: "never"}
	svc := NewService(store, media, newTestRegistry(t), completer)

	id, _ := svc.Start(context.Background(), "")
	_, err := svc.Send(context.Background(), SendInput{
		ConversationID: id,
		Text:           "hi",
		Media:          []byte("bytes"),
		MediaName:      "cat.png",
	})
	if err == nil {
		t.Fatal("Expected an error from the failed media write")
	}

	conv, _ := store.Get(id)
	if len(conv.Messages) != 0 {
		t.Errorf("Expected no messages after media failure, got %d", len(conv.Messages))
	}
	if len(completer.prompts) != 0 {
		t.Errorf("Backend was called despite the aborted turn")
	}
}

func TestSend_MediaLocatorRecordedOnUserMessage(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, &fakeMedia{locator: "/media/tok_cat.png"}, newTestRegistry(t), &fakeCompleter{reply: "nice cat"})

	id, _ := svc.Start(context.Background(), "")
	if _, err := svc.Send(context.Background(), SendInput{
		ConversationID: id,
		Text:           "look",
		Media:          []byte("bytes"),
		MediaName:      "cat.png",
	}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	conv, _ := store.Get(id)
	if conv.Messages[0].MediaURL != "/media/tok_cat.png" {
		t.Errorf("Expected media locator on user message, got %q", conv.Messages[0].MediaURL)
	}
	if conv.Messages[1].MediaURL != "" {
		t.Errorf("Assistant message should carry no media locator, got %q", conv.Messages[1].MediaURL)
	}
}

func TestSend_BackendFailureKeepsUserMessage(t *testing.T) {
	store := NewMemoryStore()
	backendErr := &llm.BackendError{Kind: llm.KindStatus, Detail: "http 500"}
	svc := NewService(store, &fakeMedia{}, newTestRegistry(t), &fakeCompleter{err: backendErr})

	id, _ := svc.Start(context.Background(), "")
	_, err := svc.Send(context.Background(), SendInput{ConversationID: id, Text: "hi"})
	var be *llm.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("Expected a BackendError, got %v", err)
	}

	conv, _ := store.Get(id)
	if len(conv.Messages) != 1 {
		t.Fatalf("Expected exactly the user message to remain, got %d messages", len(conv.Messages))
	}
	if conv.Messages[0].Role != RoleUser {
		t.Errorf("Surviving message has role %q", conv.Messages[0].Role)
	}
}

func TestSend_HistoryAccumulatesAcrossTurns(t *testing.T) {
	store := NewMemoryStore()
	completer := &fakeCompleter{reply: "pong"}
	svc := NewService(store, &fakeMedia{}, newTestRegistry(t), completer)

	id, _ := svc.Start(context.Background(), "")
	for i := 0; i < 2; i++ {
		if _, err := svc.Send(context.Background(), SendInput{ConversationID: id, Text: "ping"}); err != nil {
			t.Fatalf("Send %d failed: %v", i, err)
		}
	}
	want := "User: ping\nAssistant: pong\nUser: ping\n"
	if completer.prompts[1] != want {
		t.Errorf("Second prompt: expected %q, got %q", want, completer.prompts[1])
	}
}
