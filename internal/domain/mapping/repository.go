package mapping

import "context"

// MappingRepository is the persistence port for ticket-customer mappings.
//
// The ticket key carries a storage-level uniqueness constraint; Save returns a
// conflict error when a mapping for the same key already exists, which is the
// true at-most-once guarantee under concurrent deliveries.
type MappingRepository interface {
	// FindByTicketKey looks a mapping up by its unique natural key. It returns
	// (nil, nil) when no mapping exists and fails only on infrastructure errors.
	FindByTicketKey(ctx context.Context, ticketKey string) (*Mapping, error)

	// Save inserts a new mapping and populates the storage-assigned timestamps
	// on success.
	Save(ctx context.Context, m *Mapping) error
}
