// Package blobstore fetches encoded location files from the blob
// store: fetch(bucket, key) -> parsed JSON | missing, distinguishing
// an absent object (semantically normal — especially for atmospheric
// layers) from a transport failure.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"

	"github.com/praiaforecast/forecast-api/internal/apperr"
	"github.com/praiaforecast/forecast-api/internal/domain"
)

// ErrNotFound is returned by Fetch when the key does not exist. Callers
// treat this as a normal "no data for this layer" result, never as an
// error.
var ErrNotFound = errors.New("blobstore: object not found")

// Client is the process-wide blob client handle: lazily constructed on
// first use and reused across requests. It is not semantically shared
// mutable state — the underlying AWS SDK client is safe for concurrent
// use and carries no per-request data.
type Client struct {
	bucket string

	// AccessKey/SecretKey/Region are optional explicit credentials.
	// When AccessKey is empty the default AWS credential chain
	// (environment, shared config, container/instance role) is used
	// instead.
	AccessKey string
	SecretKey string
	Region    string

	mu  sync.Mutex
	s3c *s3.Client
}

// NewClient creates a blob client bound to a single bucket. The
// underlying AWS client is not constructed until the first Fetch call.
func NewClient(bucket string) *Client {
	return &Client{bucket: bucket}
}

// ensure lazily initializes the AWS SDK client using explicit static
// credentials when configured, else the default credential chain.
func (c *Client) ensure(ctx context.Context) (*s3.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.s3c != nil {
		return c.s3c, nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}
	if c.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("blobstore: load AWS config: %w", err)
	}

	c.s3c = s3.NewFromConfig(cfg)
	return c.s3c, nil
}

// Fetch retrieves and JSON-decodes the object at key. It returns
// ErrNotFound when the key does not exist; any other failure is
// returned wrapped as an apperr.Transient error.
func (c *Client) Fetch(ctx context.Context, key string) (domain.LayerFile, error) {
	cl, err := c.ensure(ctx)
	if err != nil {
		return domain.LayerFile{}, apperr.Transient(err, "blobstore: initialize client")
	}

	out, err := cl.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return domain.LayerFile{}, ErrNotFound
		}
		return domain.LayerFile{}, apperr.Transient(err, "blobstore: fetch %s/%s", c.bucket, key)
	}
	defer func() { _ = out.Body.Close() }()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return domain.LayerFile{}, apperr.Transient(err, "blobstore: read body %s/%s", c.bucket, key)
	}

	lf, err := domain.ParseLayerFile(body)
	if err != nil {
		// A malformed JSON body is a transport/producer problem, not a
		// decode warning internal to the day-blob format.
		return domain.LayerFile{}, apperr.Transient(err, "blobstore: parse %s/%s", c.bucket, key)
	}

	return lf, nil
}

// FetchOptional is Fetch but maps ErrNotFound to a nil *LayerFile
// instead of propagating the sentinel, for call sites where "missing"
// is simply "no data" rather than a branch the caller must check for.
func (c *Client) FetchOptional(ctx context.Context, key string) (*domain.LayerFile, error) {
	lf, err := c.Fetch(ctx, key)
	if errors.Is(err, ErrNotFound) {
		log.Debug().Str("key", key).Msg("blob layer absent")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lf, nil
}

// isNoSuchKey reports whether err represents a missing S3 object,
// across the SDK's various "not found" error shapes.
func isNoSuchKey(err error) bool {
	var nsk *s3types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}

	return false
}
