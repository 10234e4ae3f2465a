// Package commerce is the client for the payments and subscription provider
package commerce

//go:generate mockgen -destination=mock/mock_client.go -package=commercemock github.com/storynest/storynest-api/internal/clients/commerce Client

import (
	"context"
)

// Client defines the interface for querying the commerce provider
type Client interface {
	// GetSubscription fetches the owner's current subscription state.
	// Owners with no subscription get an inactive result, not an error.
	GetSubscription(ctx context.Context, input *GetSubscriptionInput) (*GetSubscriptionOutput, error)
}

// GetSubscriptionInput defines the request for fetching subscription state
type GetSubscriptionInput struct {
	OwnerID string
}

// GetSubscriptionOutput defines the response for fetching subscription state
type GetSubscriptionOutput struct {
	Plan      string
	Active    bool
	ExpiresAt int64
}
