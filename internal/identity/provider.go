// Package identity delegates sign-in to the federated providers the
// app supports (Google and Apple) and issues the API session tokens
// clients present on every call.
package identity

import (
	"context"
	"errors"
	"net/url"

	"gofinances/internal/session"
)

// ErrSignInFailed wraps any provider-side failure. Screens show a
// generic "could not connect the account" message for it.
var ErrSignInFailed = errors.New("sign in failed")

// Provider exchanges a provider credential (access token, identity
// token) for the user it belongs to.
type Provider interface {
	SignIn(ctx context.Context, credential string) (session.User, error)
}

// AvatarURL builds the generated avatar used when a provider supplies
// no photo.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
}
