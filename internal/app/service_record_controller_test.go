package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/garage/internal/ports/primary"
	"github.com/example/garage/internal/ports/secondary"
)

func validRecord(carID int64) primary.ServiceRecord {
	return primary.ServiceRecord{
		CarID:       carID,
		Date:        "2024-03-15",
		Description: "Timing belt",
		Cost:        850.50,
		Type:        "repair",
	}
}

func TestServiceRecordController_LoadRecordsDelivers(t *testing.T) {
	repo := newMockServiceRecordRepo()
	_, err := repo.Create(context.Background(), &secondary.ServiceRecordRecord{
		CarID: 3, Date: "2024-01-01", Description: "Oil change", Cost: 120, Type: "maintenance",
	})
	require.NoError(t, err)

	ctrl := NewServiceRecordController(repo, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl.LoadRecords(ctx, 3)

	require.Eventually(t, func() bool {
		return len(ctrl.Records()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Oil change", ctrl.Records()[0].Description)
}

func TestServiceRecordController_AddRefreshesViaSubscription(t *testing.T) {
	repo := newMockServiceRecordRepo()
	ctrl := NewServiceRecordController(repo, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl.LoadRecords(ctx, 3)

	require.NoError(t, ctrl.Add(ctx, validRecord(3)))

	require.Eventually(t, func() bool {
		return len(ctrl.Records()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(1), ctrl.Records()[0].ID)
}

func TestServiceRecordController_AddGuardBlocksZeroCost(t *testing.T) {
	repo := newMockServiceRecordRepo()
	ctrl := NewServiceRecordController(repo, zap.NewNop())

	record := validRecord(3)
	record.Cost = 0
	err := ctrl.Add(context.Background(), record)

	require.Error(t, err)
	assert.Equal(t, 0, repo.createCalls)
}

func TestServiceRecordController_UpdateGuardBlocksBlankDate(t *testing.T) {
	repo := newMockServiceRecordRepo()
	ctrl := NewServiceRecordController(repo, zap.NewNop())

	record := validRecord(3)
	record.Date = "  "
	err := ctrl.Update(context.Background(), record)

	require.Error(t, err)
}

func TestServiceRecordController_AddPropagatesStoreError(t *testing.T) {
	repo := newMockServiceRecordRepo()
	repo.createErr = errors.New("disk full")
	ctrl := NewServiceRecordController(repo, zap.NewNop())

	err := ctrl.Add(context.Background(), validRecord(3))
	require.Error(t, err)
}

func TestServiceRecordController_Delete(t *testing.T) {
	repo := newMockServiceRecordRepo()
	id, err := repo.Create(context.Background(), &secondary.ServiceRecordRecord{
		CarID: 3, Date: "2024-01-01", Description: "Oil change", Cost: 120, Type: "maintenance",
	})
	require.NoError(t, err)

	ctrl := NewServiceRecordController(repo, zap.NewNop())
	require.NoError(t, ctrl.Delete(context.Background(), primary.ServiceRecord{ID: id}))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestServiceRecordController_SwitchingVehiclesReplacesList(t *testing.T) {
	repo := newMockServiceRecordRepo()
	ctx := context.Background()
	for _, carID := range []int64{1, 1, 2} {
		_, err := repo.Create(ctx, &secondary.ServiceRecordRecord{
			CarID: carID, Date: "2024-01-01", Description: "Oil change", Cost: 120, Type: "maintenance",
		})
		require.NoError(t, err)
	}

	ctrl := NewServiceRecordController(repo, zap.NewNop())
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl.LoadRecords(watchCtx, 1)
	require.Eventually(t, func() bool {
		return len(ctrl.Records()) == 2
	}, time.Second, 5*time.Millisecond)

	ctrl.LoadRecords(watchCtx, 2)
	require.Eventually(t, func() bool {
		records := ctrl.Records()
		return len(records) == 1 && records[0].CarID == 2
	}, time.Second, 5*time.Millisecond)
}
