package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/download"
	"github.com/void-browser/void/internal/logging"
)

// HandleDownloadUseCase asks the user where to save a download, then
// accepts or cancels it.
type HandleDownloadUseCase struct {
	picker      port.FilePicker
	downloadDir func() (string, error)
	exists      func(path string) bool
}

// NewHandleDownloadUseCase creates a download handler. downloadDir may be nil.
func NewHandleDownloadUseCase(picker port.FilePicker, downloadDir func() (string, error)) *HandleDownloadUseCase {
	return &HandleDownloadUseCase{
		picker:      picker,
		downloadDir: downloadDir,
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// Handle resolves a filename for req and opens the save dialog.
func (uc *HandleDownloadUseCase) Handle(ctx context.Context, req port.DownloadRequest) {
	log := logging.FromContext(ctx)

	name := download.SuggestFilename(req.SuggestedFilename(), req.URI(), req.MimeType())

	dir := ""
	if uc.downloadDir != nil {
		d, err := uc.downloadDir()
		if err != nil {
			log.Debug().Err(err).Msg("no download directory")
		} else {
			dir = d
			name = download.UniqueFilename(dir, name, uc.exists)
		}
	}

	log.Debug().
		Str("uri", truncateURL(req.URI(), logURLMaxLen)).
		Str("suggested", req.SuggestedFilename()).
		Str("filename", name).
		Msg("download requested")

	uc.picker.PickSavePath(ctx, dir, name, func(path string, err error) {
		if err != nil {
			log.Error().Err(err).Str("filename", name).Msg("save dialog failed")
			req.Cancel()
			return
		}
		if path == "" {
			log.Info().Str("filename", name).Msg("download cancelled")
			req.Cancel()
			return
		}

		req.OnFinished(func(err error) {
			if err != nil {
				log.Error().Err(err).Str("destination", path).Msg("download failed")
				return
			}
			log.Info().Str("destination", path).Msg("download finished")
		})
		req.Accept(path)

		log.Info().
			Str("filename", filepath.Base(path)).
			Str("destination", path).
			Msg("download started")
	})
}
