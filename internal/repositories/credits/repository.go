// Package credits defines the interface for credit balance persistence
package credits

//go:generate mockgen -destination=mock/mock_repository.go -package=creditsmock github.com/storynest/storynest-api/internal/repositories/credits Repository

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
)

// Repository defines the interface for credit accounting. Balances are
// cached locally and adjusted through ledger events; every event carries a
// provider-assigned ID, and applying the same event twice is a no-op so
// webhook replays and push/pull overlap never double-count.
type Repository interface {
	// GetBalance retrieves the cached balance for an owner. Owners with no
	// recorded activity get a zero balance, not an error.
	GetBalance(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error)

	// ApplyEvent applies a ledger event to the balance, exactly once per
	// event ID. Applied reports whether this call was the one that counted.
	ApplyEvent(ctx context.Context, input ApplyEventInput) (*ApplyEventOutput, error)

	// SetPlan records the owner's subscription plan state alongside the
	// cached balance
	SetPlan(ctx context.Context, input SetPlanInput) (*SetPlanOutput, error)

	// ListEvents retrieves the owner's ledger, newest first
	ListEvents(ctx context.Context, input ListEventsInput) (*ListEventsOutput, error)
}

// GetBalanceInput defines the input for getting a balance
type GetBalanceInput struct {
	OwnerID string
}

// GetBalanceOutput defines the output for getting a balance
type GetBalanceOutput struct {
	Balance *story.CreditBalance
}

// ApplyEventInput defines the input for applying a ledger event
type ApplyEventInput struct {
	Event *story.CreditEvent
}

// ApplyEventOutput defines the output for applying a ledger event
type ApplyEventOutput struct {
	Applied bool
	Balance *story.CreditBalance
}

// SetPlanInput defines the input for recording subscription plan state
type SetPlanInput struct {
	OwnerID    string
	Plan       string
	PlanActive bool
	UpdatedAt  int64
}

// SetPlanOutput defines the output for recording subscription plan state
type SetPlanOutput struct{}

// ListEventsInput defines the input for listing ledger events
type ListEventsInput struct {
	OwnerID string
}

// ListEventsOutput defines the output for listing ledger events
type ListEventsOutput struct {
	Events []*story.CreditEvent
}
