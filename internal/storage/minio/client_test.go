package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMinioAPI struct {
	mock.Mock
}

func (m *mockMinioAPI) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *mockMinioAPI) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	args := m.Called(ctx, bucketName, opts)
	return args.Error(0)
}

func (m *mockMinioAPI) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *mockMinioAPI) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Error(0)
}

func (m *mockMinioAPI) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Get(0).(minio.ObjectInfo), args.Error(1)
}

func newTestClient(t *testing.T, api *mockMinioAPI) *Client {
	t.Helper()
	api.On("BucketExists", mock.Anything, "uploads").Return(true, nil).Once()
	c, err := NewClientWithAPI(context.Background(), api, "uploads", "http://localhost:9000/")
	require.NoError(t, err)
	return c
}

func TestNewClientWithAPI_CreatesMissingBucket(t *testing.T) {
	api := new(mockMinioAPI)
	api.On("BucketExists", mock.Anything, "uploads").Return(false, nil).Once()
	api.On("MakeBucket", mock.Anything, "uploads", mock.Anything).Return(nil).Once()

	_, err := NewClientWithAPI(context.Background(), api, "uploads", "http://localhost:9000")
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestClient_Upload(t *testing.T) {
	api := new(mockMinioAPI)
	c := newTestClient(t, api)

	reader := strings.NewReader("img")
	api.On("PutObject", mock.Anything, "uploads", "covers/a.png", reader, int64(3), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "image/png"
	})).Return(minio.UploadInfo{}, nil).Once()

	err := c.Upload(context.Background(), "covers/a.png", reader, 3, "image/png")
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestClient_Upload_EmptyKey(t *testing.T) {
	api := new(mockMinioAPI)
	c := newTestClient(t, api)

	err := c.Upload(context.Background(), "", strings.NewReader(""), 0, "image/png")
	assert.Error(t, err)
	api.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClient_Upload_APIError(t *testing.T) {
	api := new(mockMinioAPI)
	c := newTestClient(t, api)

	api.On("PutObject", mock.Anything, "uploads", "covers/a.png", mock.Anything, int64(3), mock.Anything).
		Return(minio.UploadInfo{}, errors.New("network down")).Once()

	err := c.Upload(context.Background(), "covers/a.png", strings.NewReader("img"), 3, "image/png")
	assert.Error(t, err)
}

func TestClient_URL(t *testing.T) {
	api := new(mockMinioAPI)
	c := newTestClient(t, api)

	assert.Equal(t, "http://localhost:9000/uploads/covers/a.png", c.URL("covers/a.png"))
}
