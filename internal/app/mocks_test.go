package app

import (
	"context"
	"sync"

	"github.com/example/garage/internal/ports/secondary"
)

// Map-backed mock repositories with a small subscriber registry, so
// controller tests can exercise the live-query path without a real
// database. Broadcasts deliver a fresh snapshot to every open
// subscription, mirroring the store contract.

type mockVehicleRepo struct {
	mu       sync.Mutex
	nextID   int64
	vehicles map[int64]*secondary.VehicleRecord

	createErr error
	updateErr error
	deleteErr error
	listErr   error

	createCalls int

	nextSub int
	subs    map[int]chan secondary.VehicleListEvent
}

func newMockVehicleRepo() *mockVehicleRepo {
	return &mockVehicleRepo{
		vehicles: make(map[int64]*secondary.VehicleRecord),
		subs:     make(map[int]chan secondary.VehicleListEvent),
	}
}

func (m *mockVehicleRepo) Create(ctx context.Context, vehicle *secondary.VehicleRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	stored := *vehicle
	stored.ID = m.nextID
	m.vehicles[stored.ID] = &stored
	m.broadcastLocked()
	return stored.ID, nil
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id int64) (*secondary.VehicleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vehicles[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (m *mockVehicleRepo) List(ctx context.Context) ([]*secondary.VehicleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.snapshotLocked(), nil
}

func (m *mockVehicleRepo) Update(ctx context.Context, vehicle *secondary.VehicleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	stored := *vehicle
	m.vehicles[stored.ID] = &stored
	m.broadcastLocked()
	return nil
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.vehicles, id)
	m.broadcastLocked()
	return nil
}

func (m *mockVehicleRepo) WatchAll(ctx context.Context) <-chan secondary.VehicleListEvent {
	out := make(chan secondary.VehicleListEvent, 16)

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = out
	out <- m.eventLocked()
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, id)
		close(out)
		m.mu.Unlock()
	}()

	return out
}

func (m *mockVehicleRepo) activeSubs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

func (m *mockVehicleRepo) snapshotLocked() []*secondary.VehicleRecord {
	out := make([]*secondary.VehicleRecord, 0, len(m.vehicles))
	for i := int64(1); i <= m.nextID; i++ {
		if v, ok := m.vehicles[i]; ok {
			copied := *v
			out = append(out, &copied)
		}
	}
	return out
}

func (m *mockVehicleRepo) eventLocked() secondary.VehicleListEvent {
	if m.listErr != nil {
		return secondary.VehicleListEvent{Err: m.listErr}
	}
	return secondary.VehicleListEvent{Vehicles: m.snapshotLocked()}
}

func (m *mockVehicleRepo) broadcastLocked() {
	for _, ch := range m.subs {
		select {
		case ch <- m.eventLocked():
		default:
		}
	}
}

var _ secondary.VehicleRepository = (*mockVehicleRepo)(nil)

type mockServiceRecordRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]*secondary.ServiceRecordRecord

	createErr error
	deleteErr error

	createCalls int

	nextSub int
	subs    map[int]serviceSub
}

type serviceSub struct {
	carID int64
	ch    chan secondary.ServiceRecordListEvent
}

func newMockServiceRecordRepo() *mockServiceRecordRepo {
	return &mockServiceRecordRepo{
		records: make(map[int64]*secondary.ServiceRecordRecord),
		subs:    make(map[int]serviceSub),
	}
}

func (m *mockServiceRecordRepo) Create(ctx context.Context, record *secondary.ServiceRecordRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	stored := *record
	stored.ID = m.nextID
	m.records[stored.ID] = &stored
	m.broadcastLocked()
	return stored.ID, nil
}

func (m *mockServiceRecordRepo) GetByID(ctx context.Context, id int64) (*secondary.ServiceRecordRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (m *mockServiceRecordRepo) ListForCar(ctx context.Context, carID int64) ([]*secondary.ServiceRecordRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listForCarLocked(carID), nil
}

func (m *mockServiceRecordRepo) Update(ctx context.Context, record *secondary.ServiceRecordRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *record
	m.records[stored.ID] = &stored
	m.broadcastLocked()
	return nil
}

func (m *mockServiceRecordRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.records, id)
	m.broadcastLocked()
	return nil
}

func (m *mockServiceRecordRepo) WatchForCar(ctx context.Context, carID int64) <-chan secondary.ServiceRecordListEvent {
	out := make(chan secondary.ServiceRecordListEvent, 16)

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = serviceSub{carID: carID, ch: out}
	out <- secondary.ServiceRecordListEvent{Records: m.listForCarLocked(carID)}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, id)
		close(out)
		m.mu.Unlock()
	}()

	return out
}

func (m *mockServiceRecordRepo) listForCarLocked(carID int64) []*secondary.ServiceRecordRecord {
	var out []*secondary.ServiceRecordRecord
	for i := int64(1); i <= m.nextID; i++ {
		if r, ok := m.records[i]; ok && r.CarID == carID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out
}

func (m *mockServiceRecordRepo) broadcastLocked() {
	for _, sub := range m.subs {
		select {
		case sub.ch <- secondary.ServiceRecordListEvent{Records: m.listForCarLocked(sub.carID)}:
		default:
		}
	}
}

var _ secondary.ServiceRecordRepository = (*mockServiceRecordRepo)(nil)

type mockPersonRepo struct {
	mu      sync.Mutex
	nextID  int64
	persons map[int64]*secondary.PersonRecord

	createErr error
	getErr    error
	listErr   error

	createCalls int

	nextSub int
	subs    map[int]chan secondary.PersonListEvent
}

func newMockPersonRepo() *mockPersonRepo {
	return &mockPersonRepo{
		persons: make(map[int64]*secondary.PersonRecord),
		subs:    make(map[int]chan secondary.PersonListEvent),
	}
}

func (m *mockPersonRepo) Create(ctx context.Context, person *secondary.PersonRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	stored := *person
	stored.ID = m.nextID
	m.persons[stored.ID] = &stored
	m.broadcastLocked()
	return stored.ID, nil
}

func (m *mockPersonRepo) GetByID(ctx context.Context, id int64) (*secondary.PersonRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.persons[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (m *mockPersonRepo) List(ctx context.Context) ([]*secondary.PersonRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.snapshotLocked(), nil
}

func (m *mockPersonRepo) Update(ctx context.Context, person *secondary.PersonRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *person
	m.persons[stored.ID] = &stored
	m.broadcastLocked()
	return nil
}

func (m *mockPersonRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.persons, id)
	m.broadcastLocked()
	return nil
}

func (m *mockPersonRepo) WatchAll(ctx context.Context) <-chan secondary.PersonListEvent {
	out := make(chan secondary.PersonListEvent, 16)

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = out
	out <- m.eventLocked()
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, id)
		close(out)
		m.mu.Unlock()
	}()

	return out
}

func (m *mockPersonRepo) snapshotLocked() []*secondary.PersonRecord {
	out := make([]*secondary.PersonRecord, 0, len(m.persons))
	for i := int64(1); i <= m.nextID; i++ {
		if p, ok := m.persons[i]; ok {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out
}

func (m *mockPersonRepo) eventLocked() secondary.PersonListEvent {
	if m.listErr != nil {
		return secondary.PersonListEvent{Err: m.listErr}
	}
	return secondary.PersonListEvent{Persons: m.snapshotLocked()}
}

func (m *mockPersonRepo) broadcastLocked() {
	for _, ch := range m.subs {
		select {
		case ch <- m.eventLocked():
		default:
		}
	}
}

var _ secondary.PersonRepository = (*mockPersonRepo)(nil)
