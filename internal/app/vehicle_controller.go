// Package app implements the interaction layer: per-entity controllers
// that own view state and draft forms, and issue store commands. Each
// controller holds at most one live subscription; state updates are
// applied by a single goroutine per subscription and serialized behind the
// controller's lock.
package app

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/example/garage/internal/core/vehicle"
	"github.com/example/garage/internal/ports/primary"
	"github.com/example/garage/internal/ports/secondary"
)

// VehicleControllerImpl implements primary.VehicleController.
type VehicleControllerImpl struct {
	repo secondary.VehicleRepository
	log  *zap.Logger

	mu      sync.Mutex
	state   primary.VehicleViewState
	form    *vehicle.Form
	gen     uint64
	cancel  context.CancelFunc
	changed chan struct{}
}

// NewVehicleController creates a vehicle controller with injected
// dependencies. The initial view state is Loading.
func NewVehicleController(repo secondary.VehicleRepository, log *zap.Logger) *VehicleControllerImpl {
	return &VehicleControllerImpl{
		repo:    repo,
		log:     log,
		state:   primary.VehicleViewState{Phase: primary.PhaseLoading},
		form:    vehicle.NewForm(),
		changed: make(chan struct{}, 1),
	}
}

// Load subscribes to the live vehicle list. A previous subscription is
// cancelled first, so at most one is active per controller; deliveries
// from a superseded subscription can no longer touch the state.
func (c *VehicleControllerImpl) Load(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	watchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	gen := c.gen
	c.setStateLocked(primary.VehicleViewState{Phase: primary.PhaseLoading})
	c.mu.Unlock()

	events := c.repo.WatchAll(watchCtx)
	go func() {
		for ev := range events {
			if ev.Err != nil {
				c.log.Warn("vehicle list delivery failed", zap.Error(ev.Err))
				c.apply(gen, primary.VehicleViewState{
					Phase:   primary.PhaseFailed,
					Message: "failed to load vehicles",
				})
				continue
			}

			vehicles := make([]primary.Vehicle, len(ev.Vehicles))
			for i, r := range ev.Vehicles {
				vehicles[i] = vehicleFromRecord(r)
			}
			c.apply(gen, primary.VehicleViewState{
				Phase:    primary.PhaseLoaded,
				Vehicles: vehicles,
			})
		}
	}()
}

// State returns the current view state.
func (c *VehicleControllerImpl) State() primary.VehicleViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Changed returns the coalescing state-change signal channel.
func (c *VehicleControllerImpl) Changed() <-chan struct{} {
	return c.changed
}

// SetField updates one draft field, clearing that field's error only.
func (c *VehicleControllerImpl) SetField(field primary.VehicleField, raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Set(field, raw)
}

// SetForm resets the draft to the given vehicle, or to empty when nil.
func (c *VehicleControllerImpl) SetForm(v *primary.Vehicle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.SetFrom(v)
}

// Validate rebuilds the draft's error map and reports whether it is empty.
func (c *VehicleControllerImpl) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Validate()
}

// FormErrors returns the current per-field validation errors.
func (c *VehicleControllerImpl) FormErrors() map[primary.VehicleField]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Errors()
}

// SubmitAdd persists the draft as a new vehicle. The required-field
// invariant guards the command even if the caller skipped Validate: a
// vehicle with a blank model or brand never reaches the store. Refresh is
// left to the live subscription.
func (c *VehicleControllerImpl) SubmitAdd(ctx context.Context) {
	c.mu.Lock()
	v := c.form.Vehicle()
	c.mu.Unlock()

	if !vehicleValid(v) {
		return
	}

	if _, err := c.repo.Create(ctx, vehicleToRecord(v)); err != nil {
		c.fail("failed to add vehicle", err)
	}
}

// SubmitUpdate persists the draft over the vehicle with the draft's id.
func (c *VehicleControllerImpl) SubmitUpdate(ctx context.Context) {
	c.mu.Lock()
	v := c.form.Vehicle()
	c.mu.Unlock()

	if !vehicleValid(v) {
		return
	}

	if err := c.repo.Update(ctx, vehicleToRecord(v)); err != nil {
		c.fail("failed to update vehicle", err)
	}
}

// SubmitDelete removes a vehicle unconditionally.
func (c *VehicleControllerImpl) SubmitDelete(ctx context.Context, v primary.Vehicle) {
	if err := c.repo.Delete(ctx, v.ID); err != nil {
		c.fail("failed to delete vehicle", err)
	}
}

// fail converts a store error into the Failed view state. The mutation is
// neither rolled back nor retried, and the draft form is left as-is.
func (c *VehicleControllerImpl) fail(message string, err error) {
	c.log.Warn(message, zap.Error(err))
	c.mu.Lock()
	c.setStateLocked(primary.VehicleViewState{Phase: primary.PhaseFailed, Message: message})
	c.mu.Unlock()
}

// apply installs a new view state if the subscription that produced it is
// still the current one.
func (c *VehicleControllerImpl) apply(gen uint64, state primary.VehicleViewState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.setStateLocked(state)
}

func (c *VehicleControllerImpl) setStateLocked(state primary.VehicleViewState) {
	c.state = state
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

func vehicleValid(v primary.Vehicle) bool {
	return strings.TrimSpace(v.Model) != "" && strings.TrimSpace(v.Brand) != ""
}

// Ensure VehicleControllerImpl implements the interface
var _ primary.VehicleController = (*VehicleControllerImpl)(nil)
