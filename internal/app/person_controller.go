package app

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/example/garage/internal/core/person"
	"github.com/example/garage/internal/ports/primary"
	"github.com/example/garage/internal/ports/secondary"
)

// PersonControllerImpl implements primary.PersonController. Same shape as
// the vehicle controller with a reduced field set, plus a one-shot
// selected-person read.
type PersonControllerImpl struct {
	repo secondary.PersonRepository
	log  *zap.Logger

	mu       sync.Mutex
	state    primary.PersonViewState
	selected *primary.Person
	form     *person.Form
	gen      uint64
	cancel   context.CancelFunc
	changed  chan struct{}
}

// NewPersonController creates a person controller with injected
// dependencies. The initial view state is Loading.
func NewPersonController(repo secondary.PersonRepository, log *zap.Logger) *PersonControllerImpl {
	return &PersonControllerImpl{
		repo:    repo,
		log:     log,
		state:   primary.PersonViewState{Phase: primary.PhaseLoading},
		form:    person.NewForm(),
		changed: make(chan struct{}, 1),
	}
}

// Load subscribes to the live person list, cancelling any previous
// subscription first.
func (c *PersonControllerImpl) Load(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	watchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	gen := c.gen
	c.setStateLocked(primary.PersonViewState{Phase: primary.PhaseLoading})
	c.mu.Unlock()

	events := c.repo.WatchAll(watchCtx)
	go func() {
		for ev := range events {
			if ev.Err != nil {
				c.log.Warn("person list delivery failed", zap.Error(ev.Err))
				c.apply(gen, primary.PersonViewState{
					Phase:   primary.PhaseFailed,
					Message: "failed to load contacts",
				})
				continue
			}

			persons := make([]primary.Person, len(ev.Persons))
			for i, r := range ev.Persons {
				persons[i] = personFromRecord(r)
			}
			c.apply(gen, primary.PersonViewState{
				Phase:   primary.PhaseLoaded,
				Persons: persons,
			})
		}
	}()
}

// State returns the current view state.
func (c *PersonControllerImpl) State() primary.PersonViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Changed returns the coalescing state-change signal channel.
func (c *PersonControllerImpl) Changed() <-chan struct{} {
	return c.changed
}

// LoadPerson fetches one person into the selected slot. Absence clears the
// selection and is not an error; a store failure surfaces as Failed.
func (c *PersonControllerImpl) LoadPerson(ctx context.Context, id int64) {
	record, err := c.repo.GetByID(ctx, id)
	if err != nil {
		c.fail("failed to load contact", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if record == nil {
		c.selected = nil
		return
	}
	p := personFromRecord(record)
	c.selected = &p
}

// Selected returns the currently selected person, nil when none.
func (c *PersonControllerImpl) Selected() *primary.Person {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// SetField updates one draft field, clearing that field's error only.
func (c *PersonControllerImpl) SetField(field primary.PersonField, raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Set(field, raw)
}

// SetForm resets the draft to the given person, or to empty when nil.
func (c *PersonControllerImpl) SetForm(p *primary.Person) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.SetFrom(p)
}

// Validate rebuilds the draft's error map and reports whether it is empty.
func (c *PersonControllerImpl) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Validate()
}

// FormErrors returns the current per-field validation errors.
func (c *PersonControllerImpl) FormErrors() map[primary.PersonField]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Errors()
}

// SubmitAdd persists the draft as a new person. The required-name
// invariant guards the command even if the caller skipped Validate.
func (c *PersonControllerImpl) SubmitAdd(ctx context.Context) {
	c.mu.Lock()
	p := c.form.Person()
	c.mu.Unlock()

	if !personValid(p) {
		return
	}

	if _, err := c.repo.Create(ctx, personToRecord(p)); err != nil {
		c.fail("failed to add contact", err)
	}
}

// SubmitUpdate persists the draft over the person with the draft's id.
func (c *PersonControllerImpl) SubmitUpdate(ctx context.Context) {
	c.mu.Lock()
	p := c.form.Person()
	c.mu.Unlock()

	if !personValid(p) {
		return
	}

	if err := c.repo.Update(ctx, personToRecord(p)); err != nil {
		c.fail("failed to update contact", err)
	}
}

// SubmitDelete removes a person unconditionally.
func (c *PersonControllerImpl) SubmitDelete(ctx context.Context, p primary.Person) {
	if err := c.repo.Delete(ctx, p.ID); err != nil {
		c.fail("failed to delete contact", err)
	}
}

func (c *PersonControllerImpl) fail(message string, err error) {
	c.log.Warn(message, zap.Error(err))
	c.mu.Lock()
	c.setStateLocked(primary.PersonViewState{Phase: primary.PhaseFailed, Message: message})
	c.mu.Unlock()
}

func (c *PersonControllerImpl) apply(gen uint64, state primary.PersonViewState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.setStateLocked(state)
}

func (c *PersonControllerImpl) setStateLocked(state primary.PersonViewState) {
	c.state = state
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

func personValid(p primary.Person) bool {
	return strings.TrimSpace(p.FirstName) != "" && strings.TrimSpace(p.LastName) != ""
}

// Ensure PersonControllerImpl implements the interface
var _ primary.PersonController = (*PersonControllerImpl)(nil)
