package session_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockHandler is a mock implementation of session.Handler.
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Open(ctx context.Context, savePath, name string) (bool, error) {
	args := m.Called(ctx, savePath, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockHandler) Close(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockHandler) Read(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockHandler) Write(ctx context.Context, id, data string) (bool, error) {
	args := m.Called(ctx, id, data)
	return args.Bool(0), args.Error(1)
}

func (m *MockHandler) Destroy(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockHandler) GC(ctx context.Context, maxLifetime time.Duration) (int, error) {
	args := m.Called(ctx, maxLifetime)
	return args.Int(0), args.Error(1)
}

// MockTimestampHandler is a mock implementation of session.TimestampHandler.
type MockTimestampHandler struct {
	MockHandler
}

func (m *MockTimestampHandler) ValidateID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTimestampHandler) UpdateTimestamp(ctx context.Context, id, data string) (bool, error) {
	args := m.Called(ctx, id, data)
	return args.Bool(0), args.Error(1)
}
