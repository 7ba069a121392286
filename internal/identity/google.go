package identity

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	oauthapi "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"gofinances/internal/session"
)

// Google resolves a Google OAuth access token to the account it was
// issued for by asking Google's userinfo endpoint. The OAuth dance
// itself happens on the device; see cmd/oauth-init for a local way to
// obtain a token.
type Google struct{}

func (Google) SignIn(ctx context.Context, accessToken string) (session.User, error) {
	if accessToken == "" {
		return session.User{}, fmt.Errorf("%w: empty access token", ErrSignInFailed)
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := oauthapi.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return session.User{}, fmt.Errorf("%w: userinfo service: %v", ErrSignInFailed, err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return session.User{}, fmt.Errorf("%w: fetch userinfo: %v", ErrSignInFailed, err)
	}
	if info.Id == "" {
		return session.User{}, fmt.Errorf("%w: userinfo without subject", ErrSignInFailed)
	}

	u := session.User{ID: info.Id, Name: info.Name, Photo: info.Picture}
	if u.Name == "" {
		u.Name = info.Email
	}
	if u.Photo == "" {
		u.Photo = AvatarURL(u.Name)
	}

	slog.InfoContext(ctx, "Google sign in verified", "user_id", u.ID)
	return u, nil
}
