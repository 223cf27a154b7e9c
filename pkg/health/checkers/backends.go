package checkers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/robot-coder/converso-multimodal/pkg/llm"
)

// BackendsChecker verifies the backend table resolves sane endpoints. It does
// not call the backends; readiness should not depend on third parties.
type BackendsChecker struct {
	registry *llm.Registry
}

func NewBackendsChecker(registry *llm.Registry) *BackendsChecker {
	return &BackendsChecker{registry: registry}
}

func (c *BackendsChecker) Name() string { return "backends" }

func (c *BackendsChecker) Check(ctx context.Context) error {
	for _, name := range c.registry.Names() {
		endpoint := c.registry.Resolve(name)
		u, err := url.Parse(endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("backend %q has invalid endpoint %q", name, endpoint)
		}
	}
	return nil
}
