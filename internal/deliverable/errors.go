package deliverable

import "fmt"

// DomainError is a quoting-rule violation with a human-readable message.
// The orchestrator converts these into validations; they never escape
// CalculateDeliverableQuote.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func domainErrorf(format string, args ...any) error {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}
