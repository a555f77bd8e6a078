package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/shopping-cart-widget/internal/platform/database"
)

type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) QueryContext(ctx context.Context, query string, args ...interface{}) (database.Rows, error) {
	callArgs := make([]interface{}, 0, 2+len(args))
	callArgs = append(callArgs, ctx, query)
	callArgs = append(callArgs, args...)

	ret := m.Called(callArgs...)

	var r0 database.Rows
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(database.Rows)
	}
	return r0, ret.Error(1)
}

type MockRows struct {
	mock.Mock
}

func (m *MockRows) Next() bool {
	args := m.Called()
	return args.Bool(0)
}

// Scan meneruskan pointer tujuan ke mock; isi nilainya lewat .Run di test.
func (m *MockRows) Scan(dest ...interface{}) error {
	args := m.Called(dest...)
	return args.Error(0)
}

func (m *MockRows) Err() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockRows) Close() error {
	args := m.Called()
	return args.Error(0)
}
