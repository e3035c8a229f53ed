package ports

import (
	"context"

	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
// This is the partner-lookup collaborator the estimation engine depends on:
// it may report "not found", and a found partner may still lack a usable
// shop pincode.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	// The partner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such partner exists.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)
}
