package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"storefront/core/storage"
	"storefront/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "catalog/products/p1.json", storage.ObjectKey("catalog/products/", "p1"))
	assert.Equal(t, "catalog/products/p1.json", storage.ObjectKey("catalog/products", "p1"))
	assert.Equal(t, "p1.json", storage.ObjectKey("", "p1"))
}

func TestIDFromKey(t *testing.T) {
	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"catalog/products/p1.json", "p1", true},
		{"catalog/products/p1.txt", "", false},
		{"catalog/products/.json", "", false},
		{"catalog/products/nested/p1.json", "", false},
		{"other/p1.json", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := storage.IDFromKey("catalog/products/", tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchBucket"}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, storage.IsNotFound(errors.New("boom")))
	assert.False(t, storage.IsNotFound(nil))
}

func TestReadJSON(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "catalog/products/p1.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"id":"p1","price":10}`))), nil)

	var doc map[string]any
	err := storage.ReadJSON(context.Background(), client, "bucket", "catalog/products/p1.json", &doc)
	require.NoError(t, err)
	assert.Equal(t, "p1", doc["id"])

	bad := new(mocks.Client)
	bad.On("GetObject", mock.Anything, "bucket", "broken.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{`))), nil)
	err = storage.ReadJSON(context.Background(), bad, "bucket", "broken.json", &doc)
	assert.ErrorContains(t, err, "failed to decode broken.json")
}

func TestWriteJSON(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bucket", "catalog/products/p1.json", mock.Anything, int64(11), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).Return(minio.UploadInfo{}, nil)

	err := storage.WriteJSON(context.Background(), client, "bucket", "catalog/products/p1.json", map[string]any{"id": "p1"})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestListKeys(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "catalog/products/a.json"}
	ch <- minio.ObjectInfo{Key: "catalog/products/b.json"}
	close(ch)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	keys, err := storage.ListKeys(context.Background(), client, "bucket", "catalog/products/")
	require.NoError(t, err)
	assert.Equal(t, []string{"catalog/products/a.json", "catalog/products/b.json"}, keys)

	failing := new(mocks.Client)
	errCh := make(chan minio.ObjectInfo, 1)
	errCh <- minio.ObjectInfo{Err: errors.New("list failed")}
	close(errCh)
	failing.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(errCh))

	_, err = storage.ListKeys(context.Background(), failing, "bucket", "catalog/products/")
	assert.ErrorContains(t, err, "list failed")
}
