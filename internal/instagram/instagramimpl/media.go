package instagramimpl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-downloader/internal/domain"
	"github.com/orgball2608/insta-downloader/internal/instagram"
	"github.com/samber/lo"
)

// Path segments that are followed by a media shortcode.
var shortcodeMarkers = []string{"reel", "reels", "p", "tv"}

// MediaIDFromURL extracts the shortcode from a post or reel link and converts
// it to the numeric media id the private API expects.
func (ig *IgImpl) MediaIDFromURL(ctx context.Context, rawURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	code, err := extractShortcode(rawURL)
	if err != nil {
		return "", err
	}

	id, err := goinsta.MediaIDFromShortID(code)
	if err != nil {
		return "", fmt.Errorf("failed to convert shortcode %q to media id: %w", code, err)
	}

	ig.Logger.Debug("Resolved media id", "url", rawURL, "shortcode", code, "media_id", id)
	return id, nil
}

// GetMedia loads the media item with the given id. A response without items
// yields a nil record.
func (ig *IgImpl) GetMedia(ctx context.Context, id string) (*domain.MediaRecord, error) {
	if ig.Client == nil {
		return nil, instagram.ErrNotLoggedIn
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ig.Logger.Info("Get media by id", "media_id", id)
	feed, err := ig.Client.GetMedia(id)
	if err != nil {
		ig.Logger.Debug("Get media error", "media_id", id, "error", err)
		return nil, fmt.Errorf("failed to get media %s: %w", id, err)
	}

	if feed == nil || len(feed.Items) == 0 || feed.Items[0] == nil {
		ig.Logger.Debug("Media lookup returned no items", "media_id", id)
		return nil, nil
	}

	record := toRecord(id, feed.Items[0])
	ig.Logger.Debug("Media found",
		"media_id", id,
		"video_sizes", lo.Map(record.Videos, func(v domain.Variant, _ int) string { return v.Size() }),
		"image_sizes", lo.Map(record.Images, func(v domain.Variant, _ int) string { return v.Size() }))
	return record, nil
}

func toRecord(id string, item *goinsta.Item) *domain.MediaRecord {
	return &domain.MediaRecord{
		ID: id,
		Videos: lo.Map(item.Videos, func(v goinsta.Video, _ int) domain.Variant {
			return domain.Variant{URL: v.URL, Width: v.Width, Height: v.Height}
		}),
		Images: lo.Map(item.Images.Versions, func(c goinsta.Candidate, _ int) domain.Variant {
			return domain.Variant{URL: c.URL, Width: c.Width, Height: c.Height}
		}),
	}
}

// extractShortcode returns the path segment that follows /reel/, /reels/, /p/
// or /tv/ in an Instagram link.
func extractShortcode(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	segments := lo.Compact(strings.Split(u.Path, "/"))
	for i, seg := range segments[:max(len(segments)-1, 0)] {
		if lo.Contains(shortcodeMarkers, seg) {
			return segments[i+1], nil
		}
	}

	return "", fmt.Errorf("%w: %s", instagram.ErrNoShortcode, rawURL)
}
