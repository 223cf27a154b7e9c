// Package compare fans one message out to several backends side by side.
package compare

import (
	"context"
	"sync"

	"github.com/robot-coder/converso-multimodal/pkg/llm"
)

// FailureSentinel is recorded for a backend whose call failed, so one broken
// backend never hides the others' answers.
const FailureSentinel = "Error fetching response"

// UseCase runs the same message against multiple backends.
type UseCase interface {
	Compare(ctx context.Context, text string, backends []string) map[string]string
}

type service struct {
	registry  *llm.Registry
	completer llm.Completer
}

func NewService(registry *llm.Registry, completer llm.Completer) UseCase {
	return &service{registry: registry, completer: completer}
}

// Compare invokes each backend concurrently with the raw text as prompt; no
// conversation state is read or written. Every requested identifier gets an
// entry in the result, either the completion or FailureSentinel.
func (s *service) Compare(ctx context.Context, text string, backends []string) map[string]string {
	results := make(map[string]string, len(backends))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, name := range backends {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			reply, err := s.completer.Complete(ctx, s.registry.Resolve(name), text)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[name] = FailureSentinel
				return
			}
			results[name] = reply
		}(name)
	}
	wg.Wait()
	return results
}
