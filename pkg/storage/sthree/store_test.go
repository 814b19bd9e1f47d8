package sthree

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/oneconcern/prebuilt/pkg/errors"
	"github.com/oneconcern/prebuilt/pkg/storage"
	"github.com/oneconcern/prebuilt/pkg/storage/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBucket = "prebuilt-indexes"

type fakeS3 struct {
	objects []string
	regions []string
	auth    []string
}

// fakeS3 serves path-style HEAD object and ListObjectsV2 requests
func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.auth = append(f.auth, r.Header.Get("Authorization"))
	bucketPath := "/" + testBucket
	switch {
	case r.Method == http.MethodGet && r.URL.Path == bucketPath && r.URL.Query().Get("list-type") == "2":
		prefix := r.URL.Query().Get("prefix")
		var contents strings.Builder
		count := 0
		for _, key := range f.objects {
			if strings.HasPrefix(key, prefix) {
				fmt.Fprintf(&contents, "<Contents><Key>%s</Key><Size>1</Size></Contents>", key)
				count++
			}
		}
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/"><Name>%s</Name><Prefix>%s</Prefix><KeyCount>%d</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>%s</ListBucketResult>`,
			testBucket, prefix, count, contents.String())
	case r.Method == http.MethodHead && strings.HasPrefix(r.URL.Path, bucketPath+"/"):
		key := strings.TrimPrefix(r.URL.Path, bucketPath+"/")
		for _, object := range f.objects {
			if object == key {
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusForbidden)
	}
}

func setupStore(t *testing.T) (storage.Store, *fakeS3) {
	fake := &fakeS3{objects: []string{"versions/101.lvi", "versions/100.lvi", "chunks/0a1b"}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	bs, err := New(Bucket(testBucket), Endpoint(server.URL), Region("eu-west-3"), StaticCredentials("AKIDEXAMPLE", "secret"))
	require.NoError(t, err)
	return bs, fake
}

func TestHas(t *testing.T) {
	bs, fake := setupStore(t)

	has, err := bs.Has(context.Background(), "versions/100.lvi")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = bs.Has(context.Background(), "versions/102.lvi")
	require.NoError(t, err)
	assert.False(t, has)

	// requests are signed with the static credentials, for the configured region
	require.NotEmpty(t, fake.auth)
	assert.Contains(t, fake.auth[0], "Credential=AKIDEXAMPLE/")
	assert.Contains(t, fake.auth[0], "/eu-west-3/s3/")
}

func TestKeysPrefix(t *testing.T) {
	bs, _ := setupStore(t)

	keys, err := bs.KeysPrefix(context.Background(), "versions/")
	require.NoError(t, err)
	assert.Equal(t, []string{"versions/100.lvi", "versions/101.lvi"}, keys)
}

func TestString(t *testing.T) {
	bs, _ := setupStore(t)
	assert.Equal(t, "s3@"+testBucket, bs.String())
}

func TestToSentinelErrors(t *testing.T) {
	for _, toPin := range []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no such key", err: awserr.NewRequestFailure(awserr.New("NoSuchKey", "", nil), 404, ""), expected: status.ErrNotExists},
		{name: "no such bucket", err: awserr.NewRequestFailure(awserr.New("NoSuchBucket", "", nil), 404, ""), expected: status.ErrNotExists},
		{name: "not found", err: awserr.NewRequestFailure(awserr.New("Other", "", nil), 404, ""), expected: status.ErrNotFound},
		{name: "invalid bucket", err: awserr.NewRequestFailure(awserr.New("InvalidBucketName", "", nil), 400, ""), expected: status.ErrInvalidResource},
		{name: "unauthorized", err: awserr.NewRequestFailure(awserr.New("Unauthorized", "", nil), 401, ""), expected: status.ErrUnauthorized},
		{name: "forbidden", err: awserr.NewRequestFailure(awserr.New("AccessDenied", "", nil), 403, ""), expected: status.ErrForbidden},
		{name: "server", err: awserr.NewRequestFailure(awserr.New("InternalError", "", nil), 500, ""), expected: status.ErrStorageAPI},
	} {
		testCase := toPin
		t.Run(testCase.name, func(t *testing.T) {
			assert.True(t, errors.Is(toSentinelErrors(testCase.err), testCase.expected))
		})
	}
	assert.Nil(t, toSentinelErrors(nil))
	assert.True(t, errors.Is(toSentinelErrors(io.ErrUnexpectedEOF), status.ErrStorageAPI))
}

func TestIsMissingKey(t *testing.T) {
	assert.True(t, isMissingKey(awserr.NewRequestFailure(awserr.New("NotFound", "", nil), 404, "")))
	assert.True(t, isMissingKey(awserr.NewRequestFailure(awserr.New("NoSuchKey", "", nil), 404, "")))
	assert.False(t, isMissingKey(awserr.NewRequestFailure(awserr.New("NoSuchBucket", "", nil), 404, "")))
	assert.False(t, isMissingKey(awserr.NewRequestFailure(awserr.New("AccessDenied", "", nil), 403, "")))
	assert.False(t, isMissingKey(io.ErrUnexpectedEOF))
}

func TestAWSConfig(t *testing.T) {
	fake := &fakeS3{objects: []string{"versions/100.lvi"}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	bs, err := New(Bucket("locked"),
		AWSConfig(aws.NewConfig().WithRegion("ap-south-1").WithMaxRetries(0)),
		Endpoint(server.URL),
		StaticCredentials("AKIDEXAMPLE", "secret"),
	)
	require.NoError(t, err)

	_, err = bs.KeysPrefix(context.Background(), "versions/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrForbidden))

	has, err := bs.Has(context.Background(), "versions/100.lvi")
	require.Error(t, err)
	assert.False(t, has)
	assert.True(t, errors.Is(err, status.ErrForbidden))

	// the base configuration supplies the signing region
	require.Len(t, fake.auth, 2)
	assert.Contains(t, fake.auth[0], "/ap-south-1/s3/")
}
