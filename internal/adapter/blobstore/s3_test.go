package blobstore

import (
	"errors"
	"testing"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestIsNoSuchKeyTypedError(t *testing.T) {
	var err error = &s3types.NoSuchKey{}
	if !isNoSuchKey(err) {
		t.Errorf("expected *s3types.NoSuchKey to be recognized as not-found")
	}
}

func TestIsNoSuchKeyOtherError(t *testing.T) {
	if isNoSuchKey(errors.New("connection reset")) {
		t.Errorf("expected a plain error to not be classified as not-found")
	}
}
