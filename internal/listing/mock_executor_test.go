package listing

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(ctx context.Context, p Pipeline, w Window) (Page, error) {
	args := m.Called(ctx, p, w)
	return args.Get(0).(Page), args.Error(1)
}
