package media

import (
	"context"
	"errors"
	"testing"

	"github.com/orgball2608/insta-downloader/internal/domain"
	mock_instagram "github.com/orgball2608/insta-downloader/internal/instagram/mocks"
	apperrors "github.com/orgball2608/insta-downloader/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		url  string
		want domain.MediaKind
	}{
		{"https://instagram.com/reel/XYZ/", domain.KindVideo},
		{"https://www.instagram.com/reels/abc/", domain.KindVideo},
		{"https://www.instagram.com/stories/someone/3312345678901234567/", domain.KindStory},
		{"https://www.instagram.com/p/Cxyz/", domain.KindStory},
		{"https://example.com/?q=reel", domain.KindVideo},
		{"https://www.instagram.com/stories/reelmaker/1/", domain.KindVideo},
		{"", domain.KindStory},
	}

	for _, tt := range tests {
		got := Classify(tt.url)
		assert.Equal(t, tt.want, got.Kind, "url %q", tt.url)
		assert.Equal(t, tt.url, got.RawURL)
	}
}

func TestStoryIdentifier(t *testing.T) {
	tests := map[string]string{
		".../abc123/": "abc123",
		"https://www.instagram.com/stories/someone/3312345678901234567/": "3312345678901234567",
		"https://www.instagram.com/stories/someone/3312345678901234567":  "3312345678901234567",
		"///abc///": "abc",
		"":          "",
		"/":         "",
		"plain":     "plain",
	}

	for in, want := range tests {
		assert.Equal(t, want, StoryIdentifier(in), "url %q", in)
	}
}

func TestResolveIdentifierStoryMakesNoRemoteCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	ig := mock_instagram.NewMockClient(ctrl)

	id, err := ResolveIdentifier(context.Background(), ig, domain.Target{
		RawURL: "https://www.instagram.com/stories/someone/abc123/",
		Kind:   domain.KindStory,
	})

	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestResolveIdentifierVideoDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	ig := mock_instagram.NewMockClient(ctrl)
	ctx := context.Background()
	url := "https://instagram.com/reel/XYZ/"

	ig.EXPECT().MediaIDFromURL(ctx, url).Return("XYZ", nil)

	id, err := ResolveIdentifier(ctx, ig, domain.Target{RawURL: url, Kind: domain.KindVideo})

	require.NoError(t, err)
	assert.Equal(t, "XYZ", id)
}

func TestResolveIdentifierVideoFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	ig := mock_instagram.NewMockClient(ctrl)
	cause := errors.New("media not found for url")

	ig.EXPECT().MediaIDFromURL(gomock.Any(), gomock.Any()).Return("", cause)

	_, err := ResolveIdentifier(context.Background(), ig, domain.Target{
		RawURL: "https://instagram.com/reel/nope/",
		Kind:   domain.KindVideo,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, apperrors.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "media not found for url")
}
