package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orgball2608/insta-downloader/internal/domain"
	"github.com/orgball2608/insta-downloader/internal/downloader/downloaderimpl"
	mock_downloader "github.com/orgball2608/insta-downloader/internal/downloader/mocks"
	mock_instagram "github.com/orgball2608/insta-downloader/internal/instagram/mocks"
	"github.com/orgball2608/insta-downloader/internal/prompt"
	"github.com/orgball2608/insta-downloader/pkg/config"
	apperrors "github.com/orgball2608/insta-downloader/pkg/errors"
	"github.com/orgball2608/insta-downloader/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var creds = domain.Credentials{Username: "alice", Password: "secret"}

type fixture struct {
	ig  *mock_instagram.MockClient
	dl  *mock_downloader.MockClient
	out *bytes.Buffer
	p   *Pipeline
}

func newFixture(t *testing.T, input string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ig:  mock_instagram.NewMockClient(ctrl),
		dl:  mock_downloader.NewMockClient(ctrl),
		out: &bytes.Buffer{},
	}
	f.p = New(Opts{
		Instagram:  f.ig,
		Downloader: f.dl,
		Prompter:   prompt.New(strings.NewReader(input), f.out),
		Logger:     logger.New(logger.Opts{Writer: io.Discard}),
	})
	return f
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	return lines[len(lines)-1]
}

func TestExecuteReel(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	url := "https://instagram.com/reel/XYZ/"

	gomock.InOrder(
		f.ig.EXPECT().Login(ctx, creds).Return(nil),
		f.ig.EXPECT().MediaIDFromURL(ctx, url).Return("XYZ", nil),
		f.ig.EXPECT().GetMedia(ctx, "XYZ").Return(&domain.MediaRecord{
			ID:     "XYZ",
			Videos: []domain.Variant{{URL: "https://cdn/v1.mp4"}, {URL: "https://cdn/v2.mp4"}},
		}, nil),
		f.dl.EXPECT().Download(ctx, domain.DownloadTarget{
			SourceURL:       "https://cdn/v1.mp4",
			DestinationPath: filepath.Join("/tmp/out", "clip.mp4"),
		}).Return(int64(10), nil),
	)

	_, err := f.p.Execute(ctx, domain.Request{Credentials: creds, URL: url, FileName: "clip", Folder: "/tmp/out"})
	require.NoError(t, err)
}

func TestExecuteStoryImage(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()

	f.ig.EXPECT().Login(ctx, creds).Return(nil)
	f.ig.EXPECT().GetMedia(ctx, "3312345678901234567").Return(&domain.MediaRecord{
		Images: []domain.Variant{{URL: "https://cdn/i1.jpg"}},
	}, nil)
	f.dl.EXPECT().Download(ctx, domain.DownloadTarget{
		SourceURL:       "https://cdn/i1.jpg",
		DestinationPath: filepath.Join("/tmp/out", "pic.jpg"),
	}).Return(int64(5), nil)

	dl, err := f.p.Execute(ctx, domain.Request{
		Credentials: creds,
		URL:         "https://www.instagram.com/stories/someone/3312345678901234567/",
		FileName:    "pic",
		Folder:      "/tmp/out",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/i1.jpg", dl.SourceURL)
}

func TestExecuteStoryWithoutVariants(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()

	f.ig.EXPECT().Login(ctx, creds).Return(nil)
	f.ig.EXPECT().GetMedia(ctx, "123").Return(&domain.MediaRecord{ID: "123"}, nil)

	_, err := f.p.Execute(ctx, domain.Request{Credentials: creds, URL: "https://instagram.com/stories/x/123/", FileName: "a", Folder: "/tmp"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNoMediaVariant(err))
}

func TestExecuteLoginFailureStopsEverything(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()

	f.ig.EXPECT().Login(ctx, creds).Return(errors.New("bad password"))

	_, err := f.p.Execute(ctx, domain.Request{Credentials: creds, URL: "https://instagram.com/reel/XYZ/", FileName: "clip", Folder: "/tmp"})
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthenticationFailed(err))
	assert.Equal(t, "Login error: bad password", Report(err))
}

func TestExecuteMediaNotFound(t *testing.T) {
	tests := []struct {
		name   string
		record *domain.MediaRecord
		err    error
	}{
		{"nil record", nil, nil},
		{"lookup error", nil, errors.New("400 Bad Request")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			ctx := context.Background()

			f.ig.EXPECT().Login(ctx, creds).Return(nil)
			f.ig.EXPECT().GetMedia(ctx, "").Return(tt.record, tt.err)

			// A story URL with no segments still reaches the lookup with an empty id.
			_, err := f.p.Execute(ctx, domain.Request{Credentials: creds, URL: "/", FileName: "a", Folder: "/tmp"})
			require.Error(t, err)
			assert.True(t, apperrors.IsMediaNotFound(err))
		})
	}
}

func TestExecuteResolveFailure(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	url := "https://instagram.com/reel/"

	f.ig.EXPECT().Login(ctx, creds).Return(nil)
	f.ig.EXPECT().MediaIDFromURL(ctx, url).Return("", errors.New("url does not contain a media shortcode"))

	_, err := f.p.Execute(ctx, domain.Request{Credentials: creds, URL: url, FileName: "a", Folder: "/tmp"})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
	assert.Contains(t, Report(err), "url does not contain a media shortcode")
}

func TestExecuteTransferFailure(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()

	f.ig.EXPECT().Login(ctx, creds).Return(nil)
	f.ig.EXPECT().GetMedia(ctx, "1").Return(&domain.MediaRecord{Videos: []domain.Variant{{URL: "https://cdn/v.mp4"}}}, nil)
	f.dl.EXPECT().Download(ctx, gomock.Any()).Return(int64(0), errors.New("connection reset"))

	_, err := f.p.Execute(ctx, domain.Request{Credentials: creds, URL: "https://instagram.com/stories/x/1/", FileName: "a", Folder: "/tmp"})
	require.Error(t, err)
	assert.True(t, apperrors.IsTransferFailed(err))
}

func TestRunPrintsOneOutcomeLine(t *testing.T) {
	f := newFixture(t, "alice\nsecret\nhttps://instagram.com/reel/XYZ/\nclip\n/tmp/out\n")

	f.ig.EXPECT().Login(gomock.Any(), creds).Return(errors.New("challenge required"))

	err := f.p.Run(context.Background())
	require.Error(t, err)

	out := f.out.String()
	assert.Equal(t, "Login error: challenge required", lastLine(out))
	assert.Equal(t, 1, strings.Count(out, "error"))
}

func TestRunInputClosed(t *testing.T) {
	f := newFixture(t, "alice\n")

	err := f.p.Run(context.Background())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(lastLine(f.out.String()), "Error: "))
}

func TestReport(t *testing.T) {
	assert.Equal(t, "Downloaded successfully", Report(nil))
	assert.Equal(t, "Error: media not found",
		Report(apperrors.NewWithCode(apperrors.CodeMediaNotFound, "media not found")))
	assert.Equal(t, "Login error: checkpoint required",
		Report(apperrors.WrapWithCode(errors.New("checkpoint required"), apperrors.CodeAuthenticationFailed, "instagram login failed")))
}

// End to end with the real downloader against a local media server.
func TestRunReelDownloadsToDisk(t *testing.T) {
	payload := bytes.Repeat([]byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p'}, 2048)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)

	folder := t.TempDir()
	input := strings.Join([]string{"alice", "secret", "https://instagram.com/reel/XYZ/", "clip", folder}, "\n") + "\n"

	ctrl := gomock.NewController(t)
	ig := mock_instagram.NewMockClient(ctrl)
	out := &bytes.Buffer{}
	log := logger.New(logger.Opts{Writer: io.Discard})
	cfg := &config.Config{}
	cfg.Download.BufferSize = 512

	p := New(Opts{
		Instagram:  ig,
		Downloader: downloaderimpl.New(downloaderimpl.Opts{Config: cfg, Logger: log}),
		Prompter:   prompt.New(strings.NewReader(input+input), out),
		Logger:     log,
	})

	ig.EXPECT().Login(gomock.Any(), creds).Return(nil).Times(2)
	ig.EXPECT().MediaIDFromURL(gomock.Any(), "https://instagram.com/reel/XYZ/").Return("XYZ", nil).Times(2)
	ig.EXPECT().GetMedia(gomock.Any(), "XYZ").Return(&domain.MediaRecord{
		Videos: []domain.Variant{{URL: srv.URL + "/v1.mp4"}, {URL: srv.URL + "/v2.mp4"}},
	}, nil).Times(2)

	// Two identical runs: the second overwrites the first.
	for i := 0; i < 2; i++ {
		require.NoError(t, p.Run(context.Background()))
		assert.Equal(t, "Downloaded successfully", lastLine(out.String()))

		got, err := os.ReadFile(filepath.Join(folder, "clip.mp4"))
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	}
}
