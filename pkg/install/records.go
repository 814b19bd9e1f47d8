package install

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/oneconcern/prebuilt/pkg/install/status"
	"github.com/oneconcern/prebuilt/pkg/model"
	"github.com/spf13/afero"
)

// Records gives access to the installed and desired version records
type Records struct {
	fs        afero.Fs
	installed string
	desired   string
}

// NewRecords for the installed and desired record files. A nil fs stands for the OS file system.
func NewRecords(fs afero.Fs, installedFile, desiredFile string) *Records {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Records{
		fs:        fs,
		installed: installedFile,
		desired:   desiredFile,
	}
}

// Installed version record
func (r *Records) Installed() (model.VersionRecord, error) {
	return ReadRecord(r.fs, r.installed)
}

// Desired version record
func (r *Records) Desired() (model.VersionRecord, error) {
	return ReadRecord(r.fs, r.desired)
}

// SetInstalled replaces the installed version record
func (r *Records) SetInstalled(v model.VersionRecord) error {
	return WriteRecord(r.fs, r.installed, v)
}

// ReadRecord reads a version record. A missing or empty file is the zero record.
func ReadRecord(fs afero.Fs, path string) (model.VersionRecord, error) {
	var v model.VersionRecord
	file, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		return v, status.ErrReadRecord.Wrap(err)
	}
	defer func() { _ = file.Close() }()

	if err = json.NewDecoder(file).Decode(&v); err != nil && err != io.EOF {
		return model.VersionRecord{}, status.ErrReadRecord.Wrap(err)
	}
	return v, nil
}

// WriteRecord atomically replaces a version record: the record is written to a temporary
// file in the same folder, then renamed into place. A crash leaves either the former or the new record.
func WriteRecord(fs afero.Fs, path string, v model.VersionRecord) error {
	b, err := json.Marshal(v)
	if err != nil {
		return status.ErrWriteRecord.Wrap(err)
	}

	dir := filepath.Dir(path)
	if err = fs.MkdirAll(dir, 0755); err != nil {
		return status.ErrWriteRecord.Wrap(err)
	}
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return status.ErrWriteRecord.Wrap(err)
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return status.ErrWriteRecord.Wrap(err)
	}

	if _, err = tmp.Write(b); err != nil {
		return cleanup(err)
	}
	if err = tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err = tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return status.ErrWriteRecord.Wrap(err)
	}
	if err = fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName)
		return status.ErrWriteRecord.Wrap(err)
	}
	return nil
}
