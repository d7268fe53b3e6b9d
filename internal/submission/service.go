package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reussir-academy/reussir_api/internal/notification"
)

var ErrDocumentRequired = errors.New("a document is required")

// Service manages exercise submissions for the protected dashboard.
type Service struct {
	repo     Repository
	notifier notification.Notifier
}

// NewService builds a submission service.
func NewService(repo Repository, notifier notification.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// CreateInput captures a new hand-in.
type CreateInput struct {
	Phone        string
	DocumentName string
	Instructions string
}

// Create records a submission in pending state.
func (s *Service) Create(ctx context.Context, input CreateInput) (Submission, error) {
	name := strings.TrimSpace(input.DocumentName)
	if name == "" {
		return Submission{}, ErrDocumentRequired
	}

	sub := Submission{
		ID:           uuid.NewString(),
		Phone:        input.Phone,
		DocumentName: name,
		Instructions: strings.TrimSpace(input.Instructions),
		Status:       StatusPending,
		SubmittedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return Submission{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindSubmissionReceived,
			Destination: input.Phone,
			Body:        fmt.Sprintf("Submission %q received, correction pending", name),
		})
	}

	return sub, nil
}

// History lists the student's submissions, newest first.
func (s *Service) History(ctx context.Context, phone string) ([]Submission, error) {
	return s.repo.ListByPhone(ctx, phone)
}
