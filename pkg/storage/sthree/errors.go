package sthree

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/oneconcern/prebuilt/pkg/errors"
	"github.com/oneconcern/prebuilt/pkg/storage/status"
)

// error codes of a missing key. HEAD responses carry no body, so the SDK reports "NotFound".
var missingKeyCodes = map[string]bool{
	s3NoSuchKey: true,
	"NotFound":  true,
}

const (
	s3NoSuchKey    = "NoSuchKey"
	s3NoSuchBucket = "NoSuchBucket"
)

// isMissingKey tells if a HEAD or GET failed only because the key is not there
func isMissingKey(err error) bool {
	var failure awserr.RequestFailure
	if !errors.As(err, &failure) {
		return false
	}
	return failure.StatusCode() == 404 && missingKeyCodes[failure.Code()]
}

// toSentinelErrors maps S3 responses to the storage status errors.
// See https://docs.aws.amazon.com/AmazonS3/latest/API/ErrorResponses.html#ErrorCodeList
func toSentinelErrors(err error) error {
	if err == nil {
		return nil
	}
	var failure awserr.RequestFailure
	if !errors.As(err, &failure) {
		return status.ErrStorageAPI.Wrap(err)
	}

	switch failure.StatusCode() {
	case 400:
		if failure.Code() == "InvalidBucketName" {
			return status.ErrInvalidResource.Wrap(err)
		}
		return status.ErrStorageAPI.Wrap(err)
	case 401:
		return status.ErrUnauthorized.Wrap(err)
	case 403:
		return status.ErrForbidden.Wrap(err)
	case 404:
		if failure.Code() == s3NoSuchBucket || missingKeyCodes[failure.Code()] {
			return status.ErrNotExists.Wrap(err)
		}
		return status.ErrNotFound.Wrap(err)
	default:
		return status.ErrStorageAPI.Wrap(err)
	}
}
