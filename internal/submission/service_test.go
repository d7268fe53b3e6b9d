package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/reussir-academy/reussir_api/internal/notification"
)

type testNotifier struct {
	last notification.Message
}

func (n *testNotifier) Send(_ context.Context, msg notification.Message) error {
	n.last = msg
	return nil
}

func TestCreateAndHistory(t *testing.T) {
	notifier := &testNotifier{}
	svc := NewService(NewMemoryRepository(), notifier)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateInput{Phone: "658508638", DocumentName: "maths-ex1.pdf", Instructions: "  focus on question 3 "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Status != StatusPending {
		t.Fatalf("new submission status = %s", first.Status)
	}
	if first.Instructions != "focus on question 3" {
		t.Fatalf("instructions not trimmed: %q", first.Instructions)
	}
	if notifier.last.Kind != notification.KindSubmissionReceived {
		t.Fatalf("expected submission notification, got %q", notifier.last.Kind)
	}

	if _, err := svc.Create(ctx, CreateInput{Phone: "658508638", DocumentName: "physics-ex2.pdf"}); err != nil {
		t.Fatalf("second create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Phone: "654046210", DocumentName: "other-student.pdf"}); err != nil {
		t.Fatalf("third create: %v", err)
	}

	history, err := svc.History(ctx, "658508638")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(history))
	}
	for _, sub := range history {
		if sub.Phone != "658508638" {
			t.Fatalf("history leaked another student's submission: %+v", sub)
		}
	}
}

func TestCreateRequiresDocument(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	_, err := svc.Create(context.Background(), CreateInput{Phone: "658508638", DocumentName: "   "})
	if !errors.Is(err, ErrDocumentRequired) {
		t.Fatalf("expected ErrDocumentRequired, got %v", err)
	}
}
