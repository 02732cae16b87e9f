package primary

import "context"

// ServiceRecord is one maintenance event tied to exactly one vehicle. All
// fields are required; Cost is strictly positive once validated.
type ServiceRecord struct {
	ID          int64
	CarID       int64
	Date        string
	Description string
	Cost        float64
	Type        string
}

// ServiceRecordController is the primary port for the service history
// screen. It is a simplified interaction layer: a single live list keyed by
// the selected vehicle, no tri-state.
type ServiceRecordController interface {
	// LoadRecords subscribes to the live record list for carID, cancelling
	// any previous subscription first.
	LoadRecords(ctx context.Context, carID int64)

	// Records returns the current record list, newest date first.
	Records() []ServiceRecord

	// Changed returns a coalescing signal channel that fires after every
	// list change.
	Changed() <-chan struct{}

	// Add persists a new record. The record must already have passed the
	// presentation-layer guard.
	Add(ctx context.Context, record ServiceRecord) error

	// Update replaces an existing record.
	Update(ctx context.Context, record ServiceRecord) error

	// Delete removes a record.
	Delete(ctx context.Context, record ServiceRecord) error
}
