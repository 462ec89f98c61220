package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// OwnerLister is a mock implementation of sync.OwnerLister
type OwnerLister struct {
	mock.Mock
}

func (m *OwnerLister) FetchOwnedItems(ctx context.Context, owner string) ([]uint64, error) {
	args := m.Called(ctx, owner)
	if ids, ok := args.Get(0).([]uint64); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}
