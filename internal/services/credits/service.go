// Package credits defines the interface for story credit operations
package credits

//go:generate mockgen -destination=mock/mock_service.go -package=creditsmock github.com/storynest/storynest-api/internal/services/credits Service

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
)

// Service defines the interface for credit operations. The balance an owner
// sees merges the local ledger with the commerce provider's subscription
// state, so a lapsed plan is reflected without waiting for a webhook.
type Service interface {
	// GetBalance returns the owner's balance, reconciled against the
	// commerce provider's subscription state
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// RecordEvent applies a ledger event, exactly once per event ID
	RecordEvent(ctx context.Context, input *RecordEventInput) (*RecordEventOutput, error)

	// SpendStoryCredit deducts one credit for a story submission.
	// Returns errors.FailedPrecondition when the balance is zero.
	SpendStoryCredit(ctx context.Context, input *SpendStoryCreditInput) (*SpendStoryCreditOutput, error)

	// ListEvents returns the owner's ledger, newest first
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)
}

// GetBalanceInput defines the request for getting a balance
type GetBalanceInput struct {
	OwnerID string
}

// GetBalanceOutput defines the response for getting a balance
type GetBalanceOutput struct {
	Balance *story.CreditBalance
}

// RecordEventInput defines the request for applying a ledger event
type RecordEventInput struct {
	EventID string
	OwnerID string
	Delta   int64
	Source  string
}

// RecordEventOutput defines the response for applying a ledger event.
// Applied is false when the event ID was seen before.
type RecordEventOutput struct {
	Applied bool
	Balance *story.CreditBalance
}

// SpendStoryCreditInput defines the request for spending one credit
type SpendStoryCreditInput struct {
	OwnerID string
	StoryID string
}

// SpendStoryCreditOutput defines the response for spending one credit
type SpendStoryCreditOutput struct {
	Balance *story.CreditBalance
}

// ListEventsInput defines the request for listing ledger events
type ListEventsInput struct {
	OwnerID string
}

// ListEventsOutput defines the response for listing ledger events
type ListEventsOutput struct {
	Events []*story.CreditEvent
}
