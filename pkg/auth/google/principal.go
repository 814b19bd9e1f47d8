package google

import (
	"context"
	"strings"

	"github.com/oneconcern/prebuilt/pkg/auth"
	"github.com/oneconcern/prebuilt/pkg/auth/status"
	goauth "google.golang.org/api/oauth2/v2"
	goption "google.golang.org/api/option"
)

var _ auth.Authable = &Auth{}

// Principal queries google oauth2 with some local credentials to extract user
// information (aka principal).
//
// When credFile is empty, credentials are taken from the default application_default_credentials.
// On linux, this is located at ~/.config/gcloud/application_default_credentials.json.
func (g *Auth) Principal(ctx context.Context, credFile string) (auth.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := []goption.ClientOption{goption.WithScopes(goauth.UserinfoEmailScope, goauth.UserinfoProfileScope)}
	if credFile != "" {
		opts = append(opts, goption.WithCredentialsFile(credFile))
	}
	svc, err := goauth.NewService(ctx, append(opts, g.serviceOpts...)...)
	if err != nil {
		return auth.Principal{}, status.ErrAuthService.Wrap(err)
	}

	u, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return auth.Principal{}, status.ErrUserinfo.Wrap(err)
	}
	if u.Email == "" {
		return auth.Principal{}, status.ErrEmailScope
	}

	return auth.Principal{
		Email: u.Email,
		Name:  fullName(u),
	}, nil
}

func fullName(u *goauth.Userinfo) (name string) {
	if u.Name != "" {
		return u.Name
	}
	name = strings.TrimSpace(u.GivenName + " " + u.FamilyName)
	if name == "" {
		// fall back on email if no nominative attributes are set
		name = u.Email
	}
	return
}
