package rest

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/syntrixbase/vidlist/internal/listing"
)

type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) List(ctx context.Context, params listing.RawParams) (*listing.PaginatedResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.PaginatedResult), args.Error(1)
}

func createTestServer(svc listing.Service) http.Handler {
	mux := http.NewServeMux()
	NewHandler(svc).RegisterRoutes(mux)
	return mux
}
