package media

import (
	"path/filepath"
	"strings"

	"github.com/flytam/filenamify"
	"github.com/orgball2608/insta-downloader/internal/domain"
	"github.com/orgball2608/insta-downloader/pkg/errors"
	"github.com/samber/lo"
)

const (
	ExtVideo = ".mp4"
	ExtImage = ".jpg"
)

// Select picks exactly one variant from record and builds the destination
// path for it. The first element of a list always wins.
//
// Videos must carry a video variant. Stories prefer a video and fall back to
// an image.
func Select(record *domain.MediaRecord, kind domain.MediaKind, folder, fileName string) (domain.DownloadTarget, error) {
	if record == nil {
		return domain.DownloadTarget{}, errors.NewWithCode(errors.CodeMediaNotFound, "media not found")
	}

	var (
		source domain.Variant
		ext    string
	)

	switch kind {
	case domain.KindVideo:
		v, ok := lo.First(record.Videos)
		if !ok {
			return domain.DownloadTarget{}, errors.NewWithCode(errors.CodeNoVideoVariant, "no video url found")
		}
		source, ext = v, ExtVideo
	case domain.KindStory:
		if v, ok := lo.First(record.Videos); ok {
			source, ext = v, ExtVideo
		} else if img, ok := lo.First(record.Images); ok {
			source, ext = img, ExtImage
		} else {
			return domain.DownloadTarget{}, errors.NewWithCode(errors.CodeNoMediaVariant, "no valid video or image url found")
		}
	default:
		return domain.DownloadTarget{}, errors.NewWithCode(errors.CodeInvalidInput, "unknown media kind: "+kind.String())
	}

	name, err := SafeFileName(fileName)
	if err != nil {
		return domain.DownloadTarget{}, err
	}

	return domain.DownloadTarget{
		SourceURL:       source.URL,
		DestinationPath: filepath.Join(folder, name+ext),
	}, nil
}

// SafeFileName returns name as typed unless it would leave the chosen folder:
// names holding a path separator, or "." and "..", are run through filenamify.
func SafeFileName(name string) (string, error) {
	if !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator) && name != "." && name != ".." {
		return name, nil
	}

	safe, err := filenamify.Filenamify(name, filenamify.Options{Replacement: "_"})
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInvalidInput, "invalid file name")
	}
	return safe, nil
}
