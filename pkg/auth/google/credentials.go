package google

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/oneconcern/prebuilt/pkg/auth/status"
	"github.com/spf13/afero"
)

const authorizedUser = "authorized_user"

// UserCredentials is the content of an application default credentials file for a user account
type UserCredentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
	Type         string `json:"type"`
}

func readCredentials(fs afero.Fs, path string) (UserCredentials, error) {
	var creds UserCredentials
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return creds, err
		}
		return creds, status.ErrCredentialsFile.Wrap(err)
	}
	if err = json.Unmarshal(b, &creds); err != nil {
		return creds, status.ErrInvalidCredentials.Wrap(err)
	}
	if creds.Type != authorizedUser || creds.RefreshToken == "" {
		return creds, status.ErrInvalidCredentials
	}
	return creds, nil
}

func writeCredentials(fs afero.Fs, path string, creds UserCredentials) error {
	creds.Type = authorizedUser
	b, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return status.ErrCredentialsFile.Wrap(err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err = fs.MkdirAll(dir, 0700); err != nil {
			return status.ErrCredentialsFile.Wrap(err)
		}
	}
	if err = afero.WriteFile(fs, path, b, 0600); err != nil {
		return status.ErrCredentialsFile.Wrap(err)
	}
	return nil
}

// RemoveCredentials deletes a credentials file. A missing file is not an error.
func (g *Auth) RemoveCredentials(path string) error {
	if err := g.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return status.ErrCredentialsFile.Wrap(err)
	}
	g.l.Info("removed credentials")
	return nil
}
