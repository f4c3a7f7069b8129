package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	calls   int
	bucket  string
	key     string
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.calls++
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + f.key}, nil
}

func TestS3Service_GetObjectURL(t *testing.T) {
	fake := &fakePresigner{}
	svc := &S3Service{presigner: fake, bucket: "assets"}

	url, err := svc.GetObjectURL(context.Background(), "/docs/analyse.pdf", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/docs/analyse.pdf", url)
	assert.Equal(t, "assets", fake.bucket)
	assert.Equal(t, "docs/analyse.pdf", fake.key)
	assert.Equal(t, 15*time.Minute, fake.expires)
}

func TestS3Service_PassThrough(t *testing.T) {
	fake := &fakePresigner{}
	svc := &S3Service{presigner: fake, bucket: "assets"}

	url, err := svc.GetObjectURL(context.Background(), "https://cdn.example/v.mp4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/v.mp4", url)

	url, err = svc.GetObjectURL(context.Background(), "", time.Minute)
	require.NoError(t, err)
	assert.Empty(t, url)
	assert.Zero(t, fake.calls)
}

func TestS3Service_PresignError(t *testing.T) {
	svc := &S3Service{presigner: &fakePresigner{err: errors.New("no creds")}, bucket: "assets"}

	_, err := svc.GetObjectURL(context.Background(), "k", time.Minute)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no creds"))
}

func TestNewFromOptions_StaticCredentials(t *testing.T) {
	svc, err := NewFromOptions(context.Background(), Options{
		Bucket:          "assets",
		Region:          "us-east-1",
		Endpoint:        "http://127.0.0.1:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
	})
	require.NoError(t, err)

	url, err := svc.GetObjectURL(context.Background(), "docs/a.pdf", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://127.0.0.1:9000/assets/docs/a.pdf?"), url)
	assert.Contains(t, url, "X-Amz-Signature=")
}

func TestNewFromOptions_RequiresBucket(t *testing.T) {
	_, err := NewFromOptions(context.Background(), Options{Region: "us-east-1"})
	require.Error(t, err)
}
