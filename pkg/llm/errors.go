package llm

import "fmt"

// Kind classifies how a backend call failed.
type Kind string

const (
	KindTimeout   Kind = "timeout"
	KindTransport Kind = "transport"
	KindStatus    Kind = "status"
)

// BackendError is the typed failure of a single backend call. A result is
// either a completion string or one of these; never both.
type BackendError struct {
	Kind   Kind
	Detail string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s error: %s", e.Kind, e.Detail)
}
