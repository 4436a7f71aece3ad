package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/apdd/apdd-server/internal/model"
)

// MockLeadStore mocks the LeadStore interface
type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Create(ctx context.Context, lead model.Lead) (model.Lead, error) {
	args := m.Called(ctx, lead)
	return args.Get(0).(model.Lead), args.Error(1)
}

func (m *MockLeadStore) GetAll(ctx context.Context) ([]model.Lead, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Lead), args.Error(1)
}

func (m *MockLeadStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadStore) CountSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadStore) CountPerDay(ctx context.Context, since time.Time) ([]model.DayCount, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]model.DayCount), args.Error(1)
}

// MockPostStore mocks the PostStore interface
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Create(ctx context.Context, post model.Post) (model.Post, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostStore) GetByID(ctx context.Context, id int64) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostStore) GetAll(ctx context.Context, publishedOnly bool) ([]model.Post, error) {
	args := m.Called(ctx, publishedOnly)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostStore) Update(ctx context.Context, post model.Post) (model.Post, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostStore) Delete(ctx context.Context, id int64) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPostStore) CountPublished(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockSessionRegistry mocks the SessionRegistry interface
type MockSessionRegistry struct {
	mock.Mock
}

func (m *MockSessionRegistry) Issue() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSessionRegistry) IsValid(token string) bool {
	args := m.Called(token)
	return args.Bool(0)
}

func (m *MockSessionRegistry) Revoke(token string) {
	m.Called(token)
}

// MockStorage mocks the Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) URL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
