package app

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/example/garage/internal/core/servicerecord"
	"github.com/example/garage/internal/ports/primary"
	"github.com/example/garage/internal/ports/secondary"
)

// ServiceRecordControllerImpl implements primary.ServiceRecordController.
// It is deliberately simpler than the vehicle controller: a single live
// list for the selected vehicle, no tri-state. Mutations rely on the live
// subscription for refresh rather than re-querying.
type ServiceRecordControllerImpl struct {
	repo secondary.ServiceRecordRepository
	log  *zap.Logger

	mu      sync.Mutex
	records []primary.ServiceRecord
	gen     uint64
	cancel  context.CancelFunc
	changed chan struct{}
}

// NewServiceRecordController creates a service record controller with
// injected dependencies.
func NewServiceRecordController(repo secondary.ServiceRecordRepository, log *zap.Logger) *ServiceRecordControllerImpl {
	return &ServiceRecordControllerImpl{
		repo:    repo,
		log:     log,
		changed: make(chan struct{}, 1),
	}
}

// LoadRecords subscribes to the live record list for carID, cancelling any
// previous subscription first.
func (c *ServiceRecordControllerImpl) LoadRecords(ctx context.Context, carID int64) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	watchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	events := c.repo.WatchForCar(watchCtx, carID)
	go func() {
		for ev := range events {
			if ev.Err != nil {
				c.log.Warn("service record delivery failed", zap.Int64("car_id", carID), zap.Error(ev.Err))
				continue
			}

			records := make([]primary.ServiceRecord, len(ev.Records))
			for i, r := range ev.Records {
				records[i] = serviceRecordFromRecord(r)
			}
			c.apply(gen, records)
		}
	}()
}

// Records returns the current record list, newest date first.
func (c *ServiceRecordControllerImpl) Records() []primary.ServiceRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records
}

// Changed returns the coalescing list-change signal channel.
func (c *ServiceRecordControllerImpl) Changed() <-chan struct{} {
	return c.changed
}

// Add persists a new record after the persistence guard passes.
func (c *ServiceRecordControllerImpl) Add(ctx context.Context, record primary.ServiceRecord) error {
	if err := servicerecord.Validate(record).Error(); err != nil {
		return err
	}

	if _, err := c.repo.Create(ctx, serviceRecordToRecord(record)); err != nil {
		c.log.Warn("failed to add service record", zap.Error(err))
		return err
	}
	return nil
}

// Update replaces an existing record after the persistence guard passes.
func (c *ServiceRecordControllerImpl) Update(ctx context.Context, record primary.ServiceRecord) error {
	if err := servicerecord.Validate(record).Error(); err != nil {
		return err
	}

	if err := c.repo.Update(ctx, serviceRecordToRecord(record)); err != nil {
		c.log.Warn("failed to update service record", zap.Error(err))
		return err
	}
	return nil
}

// Delete removes a record unconditionally.
func (c *ServiceRecordControllerImpl) Delete(ctx context.Context, record primary.ServiceRecord) error {
	if err := c.repo.Delete(ctx, record.ID); err != nil {
		c.log.Warn("failed to delete service record", zap.Error(err))
		return err
	}
	return nil
}

func (c *ServiceRecordControllerImpl) apply(gen uint64, records []primary.ServiceRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.records = records
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

// Ensure ServiceRecordControllerImpl implements the interface
var _ primary.ServiceRecordController = (*ServiceRecordControllerImpl)(nil)
