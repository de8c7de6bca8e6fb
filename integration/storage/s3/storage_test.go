package s3_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/integration/storage/s3"
	"github.com/dmitrymomot/sitekit/pkg/fingerprint"
)

type putCall struct {
	Key             string
	Body            []byte
	ContentType     string
	ContentEncoding string
	Metadata        map[string]string
	HasDeadline     bool
}

type mockClient struct {
	mu    sync.Mutex
	calls map[string]putCall
	err   func(key string) error
}

func newMockClient() *mockClient {
	return &mockClient{calls: make(map[string]putCall)}
}

func (m *mockClient) PutObject(ctx context.Context, in *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	key := aws.ToString(in.Key)
	if m.err != nil {
		if err := m.err(key); err != nil {
			return nil, err
		}
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	_, hasDeadline := ctx.Deadline()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[key] = putCall{
		Key:             key,
		Body:            body,
		ContentType:     aws.ToString(in.ContentType),
		ContentEncoding: aws.ToString(in.ContentEncoding),
		Metadata:        in.Metadata,
		HasDeadline:     hasDeadline,
	}
	return &s3aws.PutObjectOutput{}, nil
}

func (m *mockClient) call(key string) (putCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.calls[key]
	return c, ok
}

func (m *mockClient) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func newStorage(t *testing.T, client s3.S3Client, opts ...s3.Option) *s3.Storage {
	t.Helper()
	opts = append([]s3.Option{s3.WithS3Client(client)}, opts...)
	store, err := s3.New(context.Background(), s3.Config{Bucket: "site", Region: "us-east-1"}, opts...)
	require.NoError(t, err)
	return store
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  s3.Config
	}{
		{"missing bucket", s3.Config{Region: "us-east-1"}},
		{"missing region", s3.Config{Bucket: "site"}},
		{"empty", s3.Config{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := s3.New(context.Background(), tt.cfg, s3.WithS3Client(newMockClient()))
			assert.ErrorIs(t, err, s3.ErrInvalidConfig)
		})
	}
}

func TestStorage_Key(t *testing.T) {
	t.Parallel()

	plain := newStorage(t, newMockClient())
	prefixed := newStorage(t, newMockClient(), s3.WithPrefix("/releases/v1/"))

	tests := []struct {
		name    string
		store   *s3.Storage
		in      string
		want    string
		wantErr bool
	}{
		{"plain", plain, "index.html", "index.html", false},
		{"leading slash", plain, "/output/app.css", "output/app.css", false},
		{"prefixed", prefixed, "blog/post.html", "releases/v1/blog/post.html", false},
		{"dots inside name", plain, "js/app..min.js", "js/app..min.js", false},
		{"traversal", plain, "../secret", "", true},
		{"inner traversal", plain, "a/../b", "", true},
		{"empty segment", plain, "a//b", "", true},
		{"dot", plain, ".", "", true},
		{"backslash", plain, `a\b`, "", true},
		{"empty", plain, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.store.Key(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, s3.ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStorage_Put(t *testing.T) {
	t.Parallel()

	client := newMockClient()
	store := newStorage(t, client, s3.WithUploadTimeout(time.Minute))
	assert.Equal(t, "site", store.Bucket())

	data := []byte("body { color: red }")
	require.NoError(t, store.Put(context.Background(), "output/app.css", data, "text/css"))

	call, ok := client.call("output/app.css")
	require.True(t, ok)
	assert.Equal(t, data, call.Body)
	assert.Equal(t, "text/css", call.ContentType)
	assert.Empty(t, call.ContentEncoding)
	assert.Equal(t, fingerprint.Sum(data), call.Metadata[s3.FingerprintMetadataKey])
	assert.True(t, call.HasDeadline)

	assert.ErrorIs(t, store.Put(context.Background(), "", data, "text/css"), s3.ErrInvalidKey)
}

func TestStorage_PutClassifiesErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, s3.ErrAccessDenied},
		{"slow down", &smithy.GenericAPIError{Code: "SlowDown"}, s3.ErrServiceUnavailable},
		{"unavailable", &smithy.GenericAPIError{Code: "ServiceUnavailable"}, s3.ErrServiceUnavailable},
		{"request timeout", &smithy.GenericAPIError{Code: "RequestTimeout"}, s3.ErrRequestTimeout},
		{"no such bucket code", &smithy.GenericAPIError{Code: "NoSuchBucket"}, s3.ErrBucketNotFound},
		{"no such bucket type", &types.NoSuchBucket{}, s3.ErrBucketNotFound},
		{"deadline", context.DeadlineExceeded, s3.ErrOperationTimeout},
		{"canceled", context.Canceled, s3.ErrOperationCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newMockClient()
			client.err = func(string) error { return tt.err }
			store := newStorage(t, client)

			err := store.Put(context.Background(), "index.html", []byte("x"), "text/html")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown api error keeps original", func(t *testing.T) {
		t.Parallel()
		apiErr := &smithy.GenericAPIError{Code: "EntityTooLarge"}
		client := newMockClient()
		client.err = func(string) error { return apiErr }
		store := newStorage(t, client)

		err := store.Put(context.Background(), "index.html", []byte("x"), "text/html")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "EntityTooLarge")
		var target smithy.APIError
		assert.True(t, errors.As(err, &target))
	})
}
