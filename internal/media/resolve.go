package media

import (
	"context"
	"strings"

	"github.com/orgball2608/insta-downloader/internal/domain"
	"github.com/orgball2608/insta-downloader/pkg/errors"
)

// IDResolver turns a post or reel link into a media id.
type IDResolver interface {
	MediaIDFromURL(ctx context.Context, rawURL string) (string, error)
}

// Classify declares a link a video when it mentions "reel" anywhere, and a
// story otherwise.
func Classify(rawURL string) domain.Target {
	kind := domain.KindStory
	if strings.Contains(rawURL, "reel") {
		kind = domain.KindVideo
	}
	return domain.Target{RawURL: rawURL, Kind: kind}
}

// StoryIdentifier returns the last path segment of a story link after outer
// slashes are trimmed. The result is not validated; an unusable id fails later
// at lookup.
func StoryIdentifier(rawURL string) string {
	segments := strings.Split(strings.Trim(rawURL, "/"), "/")
	return segments[len(segments)-1]
}

// ResolveIdentifier maps a target to the id used for the media lookup. Only
// video targets reach the remote resolver.
func ResolveIdentifier(ctx context.Context, resolver IDResolver, target domain.Target) (string, error) {
	if target.Kind == domain.KindStory {
		return StoryIdentifier(target.RawURL), nil
	}

	id, err := resolver.MediaIDFromURL(ctx, target.RawURL)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInvalidInput, "could not resolve media id from url")
	}
	return id, nil
}
