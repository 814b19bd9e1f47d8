package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/oneconcern/prebuilt/pkg/auth"
	"github.com/oneconcern/prebuilt/pkg/auth/google"
	"github.com/oneconcern/prebuilt/pkg/catalog"
	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/oneconcern/prebuilt/pkg/dlogger"
	"github.com/oneconcern/prebuilt/pkg/install"
	"github.com/oneconcern/prebuilt/pkg/longtail"
	"github.com/oneconcern/prebuilt/pkg/metrics"
	"github.com/oneconcern/prebuilt/pkg/model"
	"github.com/oneconcern/prebuilt/pkg/prereqs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// userAuth manages the Google user credentials
type userAuth interface {
	auth.Authable
	longtail.CredentialRefresher
	CreateUserCredentials(context.Context, config.Application) error
	RemoveCredentials(string) error
}

var (
	// used to patch over the Google OAuth flow during test
	newAuthorizer = func(logger *zap.Logger) userAuth {
		return google.New(google.Logger(logger))
	}

	// used to capture the output of child processes during test
	processOutput io.Writer = os.Stdout

	// metrics collected during a single invocation
	invocationMetrics = metrics.New()
)

func flushMetrics() {
	if settings == nil || settings.MetricsFile == "" {
		return
	}
	if err := invocationMetrics.WriteTextfile(settings.MetricsFile); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not write metrics to %s: %v\n", settings.MetricsFile, err)
	}
}

/** combined config (file + env var) and parameters (pflags) */

type cliOptionInputs struct {
	settings   *config.Settings
	params     *flagsT
	onceLogger sync.Once
	logger     *zap.Logger
}

func newCliOptionInputs(settings *config.Settings, params *flagsT) *cliOptionInputs {
	if settings == nil {
		settings = &config.Settings{}
	}
	return &cliOptionInputs{
		settings: settings,
		params:   params,
	}
}

func (in *cliOptionInputs) getLogger() (*zap.Logger, error) {
	var err error
	in.onceLogger.Do(func() {
		in.logger, err = dlogger.GetLogger(in.params.root.logLevel,
			dlogger.Format(in.params.root.logFormat),
			dlogger.Output(in.params.root.logOutput),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set log level: %v", err)
	}
	return in.logger, nil
}

func (in *cliOptionInputs) credentialsFile() string {
	if in.params.root.credFile != "" {
		return in.params.root.credFile
	}
	return config.DefaultCredentialsFile
}

func (in *cliOptionInputs) application() config.Application {
	return in.settings.Application(in.credentialsFile())
}

func (in *cliOptionInputs) longtailExecutable() string {
	if in.params.root.longtail != "" {
		return in.params.root.longtail
	}
	return in.settings.Longtail
}

func (in *cliOptionInputs) authorizer() (userAuth, error) {
	logger, err := in.getLogger()
	if err != nil {
		return nil, err
	}
	return newAuthorizer(logger), nil
}

// client to the transfer tool, with credentials refreshed ahead of Google transfers
func (in *cliOptionInputs) client() (*longtail.Client, error) {
	if err := in.settings.ValidateStorage(); err != nil {
		return nil, err
	}
	logger, err := in.getLogger()
	if err != nil {
		return nil, err
	}
	authorizer, err := in.authorizer()
	if err != nil {
		return nil, err
	}
	runner := longtail.NewRunner(
		longtail.Executable(in.longtailExecutable()),
		longtail.Logger(logger),
		longtail.Output(processOutput),
		longtail.Metrics(invocationMetrics),
	)
	return longtail.NewClient(runner, in.application(), in.settings.BlockStorageURI, in.settings.VersionIndexStorageURI,
		longtail.Refresher(authorizer),
	), nil
}

func (in *cliOptionInputs) catalog(ctx context.Context) (*catalog.Catalog, error) {
	if in.settings.VersionIndexStorageURI == "" {
		return nil, fmt.Errorf("missing configuration: versionindexstorageuri")
	}
	logger, err := in.getLogger()
	if err != nil {
		return nil, err
	}
	return catalog.Open(ctx, in.application(), in.settings.VersionIndexStorageURI, catalog.Logger(logger))
}

// downloader for packages, which optionally checks the package is published first
func (in *cliOptionInputs) downloader(ctx context.Context, verify bool) (catalog.Downloader, error) {
	client, err := in.client()
	if err != nil {
		return nil, err
	}
	if !verify {
		return client, nil
	}
	c, err := in.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Verify(c, client), nil
}

func (in *cliOptionInputs) installer() (*prereqs.Installer, error) {
	logger, err := in.getLogger()
	if err != nil {
		return nil, err
	}
	return prereqs.New(in.settings.Prerequisites, prereqs.Logger(logger), prereqs.Output(processOutput)), nil
}

func (in *cliOptionInputs) reconciler(ctx context.Context) (*install.Reconciler, error) {
	if err := in.settings.ValidateInstall(); err != nil {
		return nil, err
	}
	logger, err := in.getLogger()
	if err != nil {
		return nil, err
	}
	downloader, err := in.downloader(ctx, in.params.pkg.verifyIndex)
	if err != nil {
		return nil, err
	}
	installer, err := in.installer()
	if err != nil {
		return nil, err
	}
	folder, err := filepath.Abs(in.settings.InstallFolder)
	if err != nil {
		return nil, err
	}
	records := install.NewRecords(afero.NewOsFs(), in.settings.InstalledVersionFile, in.settings.DesiredVersionFile)
	return install.NewReconciler(records, downloader, installer, folder,
		install.Logger(logger),
		install.Metrics(invocationMetrics),
	), nil
}

func protocolOf(uri model.BlockStorageURI) string {
	return model.ResolveProtocol(uri).String()
}
