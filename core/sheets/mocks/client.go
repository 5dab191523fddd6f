package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of sheets.Client
type Client struct {
	mock.Mock
}

func (m *Client) Values(ctx context.Context, rangeName string) ([][]string, error) {
	args := m.Called(ctx, rangeName)
	if rows, ok := args.Get(0).([][]string); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Append(ctx context.Context, rangeName string, row []string) error {
	args := m.Called(ctx, rangeName, row)
	return args.Error(0)
}

func (m *Client) UpdateRow(ctx context.Context, sheet string, rowNumber int, values [][]string) error {
	args := m.Called(ctx, sheet, rowNumber, values)
	return args.Error(0)
}
