package install

import (
	"context"

	"github.com/fatih/color"
	"github.com/oneconcern/prebuilt/pkg/install/status"
	"github.com/oneconcern/prebuilt/pkg/metrics"
	"github.com/oneconcern/prebuilt/pkg/model"
	"go.uber.org/zap"
)

// State of a reconciliation
type State uint8

const (
	// StateChecking compares the installed and desired records
	StateChecking State = iota
	// StateSyncing downloads the desired build
	StateSyncing
	// StatePostInstalling runs the post-install step on the downloaded folder
	StatePostInstalling
	// StateInstalled is the terminal success state
	StateInstalled
	// StateFailed is the terminal failure state
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateSyncing:
		return "syncing"
	case StatePostInstalling:
		return "post-installing"
	case StateInstalled:
		return "installed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExitSyncFailed is the exit code reported when the download fails
const ExitSyncFailed = 1

// Downloader downloads a package into a folder, reporting whether the transfer succeeded
type Downloader interface {
	Download(ctx context.Context, folder, packageName string) (bool, error)
}

// PostInstaller runs the post-install step on a freshly downloaded folder and returns its exit code
type PostInstaller interface {
	Run(ctx context.Context, folder string) (int, error)
}

// Outcome of a reconciliation
type Outcome struct {
	// State is terminal: StateInstalled or StateFailed
	State State
	// FailedStage is the state which failed, when State is StateFailed
	FailedStage State
	// ExitCode for the process: 0 on success
	ExitCode int
	// AlreadyInstalled is true when there was nothing to do
	AlreadyInstalled bool
	// Installed is the installed version record at the end of the reconciliation
	Installed model.VersionRecord
}

// Option is a functor to pass optional parameters to the reconciler
type Option func(*Reconciler)

// Logger specifies a logger for the reconciler
func Logger(logger *zap.Logger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.l = logger
		}
	}
}

// Metrics records the reconciliation outcome
func Metrics(m *metrics.Metrics) Option {
	return func(r *Reconciler) {
		r.m = m
	}
}

// Reconciler drives the installed version of the package in a folder towards the desired version
type Reconciler struct {
	records    *Records
	downloader Downloader
	installer  PostInstaller
	folder     string
	l          *zap.Logger
	m          *metrics.Metrics
}

// NewReconciler for a folder
func NewReconciler(records *Records, downloader Downloader, installer PostInstaller, folder string, opts ...Option) *Reconciler {
	r := &Reconciler{
		records:    records,
		downloader: downloader,
		installer:  installer,
		folder:     folder,
		l:          zap.NewNop(),
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

// Reconcile the installed version with the desired version.
//
// The returned error is set for failures to read or write the records, and for download or
// post-install steps which could not be attempted at all. A transfer or post-install step
// which ran and failed is reported by the Outcome only.
func (r *Reconciler) Reconcile(ctx context.Context) (Outcome, error) {
	outcome, err := r.reconcile(ctx)
	r.m.ObserveReconciliation(outcome.State.String())
	if outcome.State == StateInstalled {
		r.m.SetInstalledBuild(outcome.Installed.BuildID)
	}
	return outcome, err
}

func (r *Reconciler) reconcile(ctx context.Context) (Outcome, error) {
	state := StateChecking
	r.transition(state)

	installed, err := r.records.Installed()
	if err != nil {
		return r.fail(state, installed, 1), err
	}
	desired, err := r.records.Desired()
	if err != nil {
		return r.fail(state, installed, 1), err
	}
	logger := r.l.With(zap.String("installed", installed.BuildID), zap.String("desired", desired.BuildID))

	if installed.Matches(desired) {
		logger.Info(color.GreenString("version %s is already installed", desired.BuildID))
		r.transition(StateInstalled)
		return Outcome{State: StateInstalled, AlreadyInstalled: true, Installed: installed}, nil
	}
	if desired.IsZero() {
		logger.Error("no desired version to install")
		return r.fail(state, installed, 1), status.ErrNoDesiredVersion
	}

	state = StateSyncing
	r.transition(state)
	logger.Info("installing version " + desired.BuildID)
	ok, err := r.downloader.Download(ctx, r.folder, desired.BuildID)
	if err != nil {
		logger.Error(color.RedString("download failed"), zap.Error(err))
		return r.fail(state, installed, ExitSyncFailed), status.ErrDownload.Wrap(err)
	}
	if !ok {
		logger.Error(color.RedString("download failed"))
		return r.fail(state, installed, ExitSyncFailed), nil
	}
	logger.Info("version " + desired.BuildID + " has been downloaded")

	state = StatePostInstalling
	r.transition(state)
	code, err := r.installer.Run(ctx, r.folder)
	if err != nil {
		logger.Error(color.RedString("prerequisites installer failed"), zap.Error(err))
		return r.fail(state, installed, 1), status.ErrPrerequisites.Wrap(err)
	}
	if code != 0 {
		logger.Error(color.RedString("prerequisites installer failed"), zap.Int("exit code", code))
		return r.fail(state, installed, code), nil
	}

	if err = r.records.SetInstalled(desired); err != nil {
		logger.Error(color.RedString("cannot record installed version"), zap.Error(err))
		return r.fail(state, installed, 1), err
	}
	r.transition(StateInstalled)
	logger.Info(color.GreenString("version %s is installed", desired.BuildID))
	return Outcome{State: StateInstalled, ExitCode: 0, Installed: desired}, nil
}

func (r *Reconciler) fail(stage State, installed model.VersionRecord, code int) Outcome {
	r.transition(StateFailed)
	return Outcome{State: StateFailed, FailedStage: stage, ExitCode: code, Installed: installed}
}

func (r *Reconciler) transition(to State) {
	r.l.Debug("reconciliation state", zap.Stringer("state", to))
}
