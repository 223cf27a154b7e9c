package conversation

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a conversation id was never issued by Create.
var ErrNotFound = errors.New("conversation not found")

// Store holds conversation state for the lifetime of the process.
type Store interface {
	// Create registers an empty conversation and returns its id. Never fails.
	Create(theme string) string
	// Append adds a message to the end of the conversation's sequence.
	Append(id string, msg Message) error
	// Get returns a snapshot of the conversation; callers cannot mutate stored state.
	Get(id string) (Conversation, error)
	// List returns summaries ordered by creation time.
	List(limit, offset int) []Summary
}

// MemoryStore is the in-process Store. A single RWMutex serializes appends;
// contention is expected to be low enough that per-id locking is not worth it.
type MemoryStore struct {
	mu    sync.RWMutex
	convs map[string]*Conversation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{convs: make(map[string]*Conversation)}
}

func (s *MemoryStore) Create(theme string) string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[id] = &Conversation{
		ID:        id,
		Theme:     theme,
		CreatedAt: time.Now().UTC(),
		Messages:  []Message{},
	}
	return id
}

func (s *MemoryStore) Append(id string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[id]
	if !ok {
		return ErrNotFound
	}
	conv.Messages = append(conv.Messages, msg)
	return nil
}

func (s *MemoryStore) Get(id string) (Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.convs[id]
	if !ok {
		return Conversation{}, ErrNotFound
	}
	snapshot := *conv
	snapshot.Messages = make([]Message, len(conv.Messages))
	copy(snapshot.Messages, conv.Messages)
	return snapshot, nil
}

func (s *MemoryStore) List(limit, offset int) []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]Summary, 0, len(s.convs))
	for _, conv := range s.convs {
		all = append(all, Summary{
			ID:           conv.ID,
			Theme:        conv.Theme,
			CreatedAt:    conv.CreatedAt,
			MessageCount: len(conv.Messages),
		})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return []Summary{}
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
