package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields left empty on a submitted form.
// It is recoverable: the caller keeps its field values, corrects them and
// retries.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
}
