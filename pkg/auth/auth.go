// Package auth allows for authenticating against some external identity provider
package auth

import "context"

// Principal is the identity of the signed-in user
type Principal struct {
	Email string
	Name  string
}

func (p Principal) String() string {
	if p.Name == "" || p.Name == p.Email {
		return p.Email
	}
	return p.Name + " <" + p.Email + ">"
}

// Authable knows how to retrieve a principal from credentials
type Authable interface {
	Principal(ctx context.Context, credFile string) (Principal, error)
}
