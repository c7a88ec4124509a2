package instagramimpl

import (
	"context"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-downloader/internal/domain"
	"github.com/orgball2608/insta-downloader/pkg/errors"
)

// Login creates a fresh goinsta client for the given credentials and signs in.
// Nothing is exported to disk.
func (ig *IgImpl) Login(ctx context.Context, creds domain.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ig.Logger.Info("Attempting to log in with credentials", "username", creds.Username)

	client := goinsta.New(creds.Username, creds.Password)
	if err := client.Login(); err != nil {
		ig.Logger.Debug("Login failed", "username", creds.Username, "error", err)
		return errors.WrapWithCode(err, errors.CodeAuthenticationFailed, "instagram login failed")
	}

	ig.Client = client
	ig.Logger.Info("Successfully logged in with credentials", "username", creds.Username)
	return nil
}
