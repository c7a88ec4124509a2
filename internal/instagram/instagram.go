package instagram

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-downloader/internal/domain"
)

var (
	ErrNotLoggedIn = errors.New("instagram session is not established")
	ErrNoShortcode = errors.New("url does not contain a media shortcode")
)

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go
type Client interface {
	// Login establishes the session used by every later call.
	Login(ctx context.Context, creds domain.Credentials) error
	// MediaIDFromURL resolves a post or reel link to its media id.
	MediaIDFromURL(ctx context.Context, rawURL string) (string, error)
	// GetMedia returns nil without error when Instagram has no item for id.
	GetMedia(ctx context.Context, id string) (*domain.MediaRecord, error)
}
