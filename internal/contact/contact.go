package contact

import (
	"context"

	"go.uber.org/zap"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

// Message is a submission from the contact form. Name, email and body are
// required; phone and subject are optional.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

// Validate checks the required fields for non-emptiness only.
func (m Message) Validate() error {
	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Email == "" {
		missing = append(missing, "email")
	}
	if m.Body == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &domain.ValidationError{MissingFields: missing}
	}
	return nil
}

// Service accepts contact messages. There is no mailbox behind it; a valid
// message is logged and acknowledged.
type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) Submit(_ context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	s.logger.Info("contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
	)
	return nil
}
