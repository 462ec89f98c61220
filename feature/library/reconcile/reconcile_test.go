package reconcile

import (
	"context"
	"errors"
	"testing"

	"gamesync/feature/library/catalog"
	"gamesync/feature/library/models"
	fetchermocks "gamesync/feature/library/reconcile/mocks"
	storemocks "gamesync/feature/library/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReconcileItem_AbsentRecordFetchesDetails(t *testing.T) {
	s := new(storemocks.Store)
	f := new(fetchermocks.DetailFetcher)
	r := New(s, f, "steam", zap.NewNop())

	s.On("GetGame", mock.Anything, uint64(42)).Return(nil, nil)
	f.On("FetchDetails", mock.Anything, uint64(42), mock.Anything).Return(catalog.DetailResult{
		Status: catalog.DetailFound,
		Record: &models.GameRecord{ItemID: 42, Name: "Portal"},
	})

	record, outcome, err := r.ReconcileItem(context.Background(), 42, []string{"111", "222"}, false, nil)

	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)
	require.NotNil(t, record)
	assert.Equal(t, "Portal", record.Name)
	assert.Equal(t, []string{"111", "222"}, record.Owners.Owners("steam"))
	s.AssertExpectations(t)
	f.AssertExpectations(t)
}

func TestReconcileItem_ExistingRecordMergesOwnersWithoutFetch(t *testing.T) {
	s := new(storemocks.Store)
	f := new(fetchermocks.DetailFetcher)
	r := New(s, f, "steam", zap.NewNop())

	existing := &models.GameRecord{
		ItemID: 42,
		Name:   "Portal",
		Price:  &models.PriceQuote{Currency: "EUR", Final: 499},
		Owners: models.NewOwnership("steam", []string{"111"}),
	}
	s.On("GetGame", mock.Anything, uint64(42)).Return(existing, nil)

	record, outcome, err := r.ReconcileItem(context.Background(), 42, []string{"111", "222"}, false, nil)

	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)
	assert.Equal(t, []string{"111", "222"}, record.Owners.Owners("steam"))
	// Stored metadata survives the merge untouched.
	assert.Equal(t, "Portal", record.Name)
	assert.Equal(t, int64(499), record.Price.Final)
	f.AssertNotCalled(t, "FetchDetails", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileItem_UnchangedOwnersAreSkipped(t *testing.T) {
	s := new(storemocks.Store)
	f := new(fetchermocks.DetailFetcher)
	r := New(s, f, "steam", zap.NewNop())

	existing := &models.GameRecord{
		ItemID: 42,
		Owners: models.NewOwnership("steam", []string{"111", "222"}),
	}
	s.On("GetGame", mock.Anything, uint64(42)).Return(existing, nil)

	record, outcome, err := r.ReconcileItem(context.Background(), 42, []string{"111"}, false, nil)

	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Nil(t, record)
	f.AssertNotCalled(t, "FetchDetails", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileItem_OverrideReplacesRecord(t *testing.T) {
	s := new(storemocks.Store)
	f := new(fetchermocks.DetailFetcher)
	r := New(s, f, "steam", zap.NewNop())

	existing := &models.GameRecord{
		ItemID: 42,
		Name:   "Old Name",
		Owners: models.NewOwnership("steam", []string{"333"}),
	}
	s.On("GetGame", mock.Anything, uint64(42)).Return(existing, nil)
	f.On("FetchDetails", mock.Anything, uint64(42), mock.Anything).Return(catalog.DetailResult{
		Status: catalog.DetailFound,
		Record: &models.GameRecord{ItemID: 42, Name: "New Name"},
	})

	record, outcome, err := r.ReconcileItem(context.Background(), 42, []string{"111"}, true, nil)

	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)
	assert.Equal(t, "New Name", record.Name)
	// Override is the one case allowed to drop previously recorded owners.
	assert.Equal(t, []string{"111"}, record.Owners.Owners("steam"))
}

func TestReconcileItem_FetchFailureCountsAsFailed(t *testing.T) {
	s := new(storemocks.Store)
	f := new(fetchermocks.DetailFetcher)
	r := New(s, f, "steam", zap.NewNop())

	s.On("GetGame", mock.Anything, uint64(42)).Return(nil, nil)
	f.On("FetchDetails", mock.Anything, uint64(42), mock.Anything).Return(catalog.DetailResult{
		Status: catalog.DetailTransientFailure,
	})

	record, outcome, err := r.ReconcileItem(context.Background(), 42, []string{"111"}, false, nil)

	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Nil(t, record)
}

func TestReconcileItem_StoreErrorIsReturned(t *testing.T) {
	s := new(storemocks.Store)
	f := new(fetchermocks.DetailFetcher)
	r := New(s, f, "steam", zap.NewNop())

	s.On("GetGame", mock.Anything, uint64(42)).Return(nil, errors.New("connection refused"))

	_, outcome, err := r.ReconcileItem(context.Background(), 42, []string{"111"}, false, nil)

	assert.Error(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
}

func TestReconcileItem_Idempotent(t *testing.T) {
	s := new(storemocks.Store)
	f := new(fetchermocks.DetailFetcher)
	r := New(s, f, "steam", zap.NewNop())

	merged := &models.GameRecord{
		ItemID: 42,
		Owners: models.NewOwnership("steam", []string{"111", "222"}),
	}
	s.On("GetGame", mock.Anything, uint64(42)).Return(merged, nil)

	// A second run with identical inputs finds nothing left to merge.
	record, outcome, err := r.ReconcileItem(context.Background(), 42, []string{"111", "222"}, false, nil)

	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Nil(t, record)
}
