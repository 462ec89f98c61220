package mocks

import (
	"context"

	"gamesync/core/fetch"
	"gamesync/feature/library/catalog"

	"github.com/stretchr/testify/mock"
)

// DetailFetcher is a mock implementation of reconcile.DetailFetcher
type DetailFetcher struct {
	mock.Mock
}

func (m *DetailFetcher) FetchDetails(ctx context.Context, itemID uint64, report fetch.ThrottleReporter) catalog.DetailResult {
	args := m.Called(ctx, itemID, report)
	return args.Get(0).(catalog.DetailResult)
}
