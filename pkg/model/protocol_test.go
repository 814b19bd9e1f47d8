package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type protocolFixture struct {
	name     string
	uri      string
	expected Protocol
}

func protocolTestCases() []protocolFixture {
	return []protocolFixture{
		{name: "google bucket", uri: "gs://bucket/blocks", expected: ProtocolGoogle},
		{name: "google bare scheme", uri: "gs://", expected: ProtocolGoogle},
		{name: "s3 bucket", uri: "s3://bucket/store", expected: ProtocolS3},
		{name: "s3 bare scheme", uri: "s3://", expected: ProtocolS3},
		{name: "absolute path", uri: "/mnt/share/blocks", expected: ProtocolLocal},
		{name: "windows path", uri: `C:\prebuilt\blocks`, expected: ProtocolLocal},
		{name: "relative path", uri: "blocks", expected: ProtocolLocal},
		{name: "empty", uri: "", expected: ProtocolLocal},
		{name: "malformed google", uri: "gs:/bucket", expected: ProtocolLocal},
		{name: "upper case scheme", uri: "GS://bucket", expected: ProtocolLocal},
		{name: "scheme not at start", uri: "file://gs://bucket", expected: ProtocolLocal},
		{name: "other scheme", uri: "azure://container", expected: ProtocolLocal},
	}
}

func TestResolveProtocol(t *testing.T) {
	for _, toPin := range protocolTestCases() {
		testCase := toPin
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			p := ResolveProtocol(BlockStorageURI(testCase.uri))
			assert.Equal(t, testCase.expected, p)
			assert.NotEqual(t, ProtocolNone, p)
			assert.Equal(t, p, BlockStorageURI(testCase.uri).Protocol())
			assert.Equal(t, p, VersionIndexStorageURI(testCase.uri).Protocol())
		})
	}
}

func TestProtocolString(t *testing.T) {
	assert.Equal(t, "none", ProtocolNone.String())
	assert.Equal(t, "local", ProtocolLocal.String())
	assert.Equal(t, "google", ProtocolGoogle.String())
	assert.Equal(t, "s3", ProtocolS3.String())
	assert.Equal(t, "none", Protocol(42).String())
}
