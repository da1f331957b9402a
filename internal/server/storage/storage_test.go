package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/plantpal/internal/common"
	sc "github.com/dmitrijs2005/plantpal/internal/server/config"
)

func TestNewKey(t *testing.T) {
	k1 := NewKey("u1", "plants", "Monstera.JPG")
	k2 := NewKey("u1", "plants", "Monstera.JPG")

	assert.True(t, strings.HasPrefix(k1, "users/u1/plants/"), k1)
	assert.True(t, strings.HasSuffix(k1, ".jpg"), k1)
	assert.NotEqual(t, k1, k2)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "k", "image/png", []byte("png")))
	url, err := s.URL(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,cG5n", url)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.URL(ctx, "k")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestNew_MemoryWithoutBucket(t *testing.T) {
	s, err := New(context.Background(), &sc.Config{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
}

func stubAWS(t *testing.T) {
	t.Helper()
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	origPut, origDel, origPresign := putObject, deleteObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew
		putObject, deleteObject, presignGetObject = origPut, origDel, origPresign
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "eu-west-1", lo.Region)
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		require.NotNil(t, opts.BaseEndpoint)
		assert.Equal(t, "http://minio:9000", *opts.BaseEndpoint)
		assert.True(t, opts.UsePathStyle)
		return &s3.Client{}
	}
}

func TestS3Store(t *testing.T) {
	stubAWS(t)

	var put *s3.PutObjectInput
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		put = in
		return nil
	}
	var deleted string
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) error {
		deleted = *in.Key
		return nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://signed/" + *in.Bucket + "/" + *in.Key}, nil
	}

	ctx := context.Background()
	store, err := New(ctx, &sc.Config{S3Bucket: "plants", S3Region: "eu-west-1", S3BaseEndpoint: "http://minio:9000"})
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "a/b.png", "image/png", []byte("data")))
	require.NotNil(t, put)
	assert.Equal(t, "plants", *put.Bucket)
	assert.Equal(t, "image/png", *put.ContentType)
	body, _ := io.ReadAll(put.Body)
	assert.Equal(t, "data", string(body))

	url, err := store.URL(ctx, "a/b.png")
	require.NoError(t, err)
	assert.Equal(t, "https://signed/plants/a/b.png", url)

	require.NoError(t, store.Delete(ctx, "a/b.png"))
	assert.Equal(t, "a/b.png", deleted)
}

func TestS3Store_Errors(t *testing.T) {
	stubAWS(t)
	boom := errors.New("boom")
	putObject = func(*s3.Client, context.Context, *s3.PutObjectInput) error { return boom }
	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, boom
	}

	ctx := context.Background()
	store, err := NewS3Store(ctx, &sc.Config{S3Bucket: "plants", S3Region: "eu-west-1", S3BaseEndpoint: "http://minio:9000"})
	require.NoError(t, err)

	assert.ErrorIs(t, store.Put(ctx, "k", "image/png", nil), boom)
	_, err = store.URL(ctx, "k")
	assert.ErrorIs(t, err, boom)
}

func TestNewS3Store_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := New(context.Background(), &sc.Config{S3Bucket: "b"})
	assert.EqualError(t, err, "no config")
}
