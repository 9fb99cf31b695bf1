package mockstorage

import (
	"context"
	"hellofood/pkg/storage"

	gomock "go.uber.org/mock/gomock"
)

// ExpectWithTx makes m.WithTx run its callback against a fresh MockAllStorage
// prepared by fn.
func ExpectWithTx(ctrl *gomock.Controller, m *MockStorage, fn func(tx *MockAllStorage)) *gomock.Call {
	return m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

// ExpectWithSnapshot is ExpectWithTx for m.WithSnapshot.
func ExpectWithSnapshot(ctrl *gomock.Controller, m *MockStorage, fn func(tx *MockAllStorage)) *gomock.Call {
	return m.EXPECT().WithSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}
