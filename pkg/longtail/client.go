package longtail

import (
	"context"

	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/oneconcern/prebuilt/pkg/longtail/status"
	"github.com/oneconcern/prebuilt/pkg/model"
)

// CredentialRefresher refreshes credentials which expire, ahead of a transfer
type CredentialRefresher interface {
	Refresh(context.Context, config.Application) error
}

// ClientOption is a functor to pass optional parameters to the client
type ClientOption func(*Client)

// Refresher sets the credential refresher used before transfers to Google Cloud Storage
func Refresher(refresher CredentialRefresher) ClientOption {
	return func(c *Client) {
		c.refresher = refresher
	}
}

// Client uploads and downloads packages to and from a configured block store
type Client struct {
	runner    *Runner
	app       config.Application
	blocks    model.BlockStorageURI
	indexes   model.VersionIndexStorageURI
	refresher CredentialRefresher
}

// NewClient for a block store and a version index storage root
func NewClient(runner *Runner, app config.Application, blocks model.BlockStorageURI, indexes model.VersionIndexStorageURI, opts ...ClientOption) *Client {
	c := &Client{
		runner:  runner,
		app:     app,
		blocks:  blocks,
		indexes: indexes,
	}
	for _, apply := range opts {
		apply(c)
	}
	return c
}

// Upload the content of folder as a package
func (c *Client) Upload(ctx context.Context, folder, packageName string) (bool, error) {
	return c.sync(ctx, Upload, folder, packageName)
}

// Download a package into folder
func (c *Client) Download(ctx context.Context, folder, packageName string) (bool, error) {
	return c.sync(ctx, Download, folder, packageName)
}

func (c *Client) sync(ctx context.Context, op Operation, folder, packageName string) (bool, error) {
	protocol := model.ResolveProtocol(c.blocks)
	if protocol == model.ProtocolGoogle && c.refresher != nil {
		if err := c.refresher.Refresh(ctx, c.app); err != nil {
			return false, status.ErrCredentials.Wrap(err)
		}
	}
	return c.runner.Run(ctx, c.app, protocol, op, c.blocks, folder, model.PackageURI(c.indexes, packageName))
}
