// Package credits implements the credits orchestrator
package credits

import (
	"context"

	"go.uber.org/zap"

	"github.com/storynest/storynest-api/internal/clients/commerce"
	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	"github.com/storynest/storynest-api/internal/pkg/clock"
	"github.com/storynest/storynest-api/internal/pkg/idgen"
	creditsrepo "github.com/storynest/storynest-api/internal/repositories/credits"
	creditssvc "github.com/storynest/storynest-api/internal/services/credits"
)

// Ledger event sources
const (
	SourcePurchase          = "purchase"
	SourceSubscriptionGrant = "subscription_grant"
	SourceSpend             = "spend"
	SourceReferral          = "referral"
)

var allowedSources = []string{SourcePurchase, SourceSubscriptionGrant, SourceSpend, SourceReferral}

// Config holds the dependencies for the credits orchestrator
type Config struct {
	CreditsRepo      creditsrepo.Repository
	CommerceClient   commerce.Client
	EventIDGenerator idgen.Generator
	Clock            clock.Clock
	Logger           *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreditsRepo == nil {
		vb.RequiredField("CreditsRepo")
	}
	if c.CommerceClient == nil {
		vb.RequiredField("CommerceClient")
	}
	if c.EventIDGenerator == nil {
		vb.RequiredField("EventIDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}

	return vb.Build()
}

// Orchestrator implements the credits.Service interface
type Orchestrator struct {
	creditsRepo    creditsrepo.Repository
	commerceClient commerce.Client
	eventIDGen     idgen.Generator
	clock          clock.Clock
	logger         *zap.Logger
}

// New creates a new credits orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		creditsRepo:    cfg.CreditsRepo,
		commerceClient: cfg.CommerceClient,
		eventIDGen:     cfg.EventIDGenerator,
		clock:          cfg.Clock,
		logger:         cfg.Logger,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ creditssvc.Service = (*Orchestrator)(nil)

// GetBalance returns the cached balance merged with the commerce provider's
// live subscription state. When the provider is unreachable the cached state
// is served as-is; a stale plan beats an error on the paywall screen.
func (o *Orchestrator) GetBalance(ctx context.Context, input *creditssvc.GetBalanceInput) (*creditssvc.GetBalanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	balanceOutput, err := o.creditsRepo.GetBalance(ctx, creditsrepo.GetBalanceInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	balance := balanceOutput.Balance

	subscription, err := o.commerceClient.GetSubscription(ctx, &commerce.GetSubscriptionInput{OwnerID: input.OwnerID})
	if err != nil {
		o.logger.Warn("commerce provider unreachable, serving cached balance",
			zap.String("owner_id", input.OwnerID),
			zap.Error(err))
		return &creditssvc.GetBalanceOutput{Balance: balance}, nil
	}

	if subscription.Plan != balance.Plan || subscription.Active != balance.PlanActive {
		if _, err := o.creditsRepo.SetPlan(ctx, creditsrepo.SetPlanInput{
			OwnerID:    input.OwnerID,
			Plan:       subscription.Plan,
			PlanActive: subscription.Active,
			UpdatedAt:  o.clock.Now().Unix(),
		}); err != nil {
			return nil, err
		}
		balance.Plan = subscription.Plan
		balance.PlanActive = subscription.Active
	}

	return &creditssvc.GetBalanceOutput{Balance: balance}, nil
}

// RecordEvent applies a ledger event. The event ID comes from the caller
// (typically the payment provider), so a webhook delivered twice counts once.
func (o *Orchestrator) RecordEvent(ctx context.Context, input *creditssvc.RecordEventInput) (*creditssvc.RecordEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("eventID", input.EventID, vb)
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateEnum("source", input.Source, allowedSources, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if input.Delta == 0 {
		return nil, errors.InvalidArgument("delta cannot be zero")
	}

	output, err := o.creditsRepo.ApplyEvent(ctx, creditsrepo.ApplyEventInput{
		Event: &story.CreditEvent{
			ID:        input.EventID,
			OwnerID:   input.OwnerID,
			Delta:     input.Delta,
			Source:    input.Source,
			CreatedAt: o.clock.Now().Unix(),
		},
	})
	if err != nil {
		return nil, err
	}

	if !output.Applied {
		o.logger.Info("duplicate credit event ignored",
			zap.String("owner_id", input.OwnerID),
			zap.String("event_id", input.EventID))
	}

	return &creditssvc.RecordEventOutput{
		Applied: output.Applied,
		Balance: output.Balance,
	}, nil
}

// SpendStoryCredit deducts one credit for a story submission. The spend event
// is keyed by story ID, so retrying a submission that already spent never
// charges twice.
func (o *Orchestrator) SpendStoryCredit(ctx context.Context, input *creditssvc.SpendStoryCreditInput) (*creditssvc.SpendStoryCreditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	balanceOutput, err := o.creditsRepo.GetBalance(ctx, creditsrepo.GetBalanceInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	if balanceOutput.Balance.StoryCredits <= 0 {
		return nil, errors.FailedPrecondition("no story credits remaining").
			WithMeta("owner_id", input.OwnerID)
	}

	eventID := o.eventIDGen.Generate()
	if input.StoryID != "" {
		eventID = "spend_" + input.StoryID
	}

	output, err := o.creditsRepo.ApplyEvent(ctx, creditsrepo.ApplyEventInput{
		Event: &story.CreditEvent{
			ID:        eventID,
			OwnerID:   input.OwnerID,
			Delta:     -1,
			Source:    SourceSpend,
			CreatedAt: o.clock.Now().Unix(),
		},
	})
	if err != nil {
		return nil, err
	}

	return &creditssvc.SpendStoryCreditOutput{Balance: output.Balance}, nil
}

// ListEvents returns the owner's ledger, newest first
func (o *Orchestrator) ListEvents(ctx context.Context, input *creditssvc.ListEventsInput) (*creditssvc.ListEventsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.creditsRepo.ListEvents(ctx, creditsrepo.ListEventsInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	return &creditssvc.ListEventsOutput{Events: output.Events}, nil
}
