package mocks

import (
	"context"

	"order-reconciler/core/orderapi"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of orderapi.Client
type Client struct {
	mock.Mock
}

func (m *Client) Authorize(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *Client) OrderByNum(ctx context.Context, token, numOrderID string) (*orderapi.Order, error) {
	args := m.Called(ctx, token, numOrderID)
	if order, ok := args.Get(0).(*orderapi.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}
