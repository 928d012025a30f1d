package port

import "context"

// DownloadRequest is a download offered by the web engine.
type DownloadRequest interface {
	SuggestedFilename() string
	URI() string
	MimeType() string
	// Accept starts writing to destPath.
	Accept(destPath string)
	Cancel()
	// OnFinished registers a completion callback; err is nil on success.
	OnFinished(func(err error))
}

// FilePicker asks the user for a save location.
// done receives "" when the user cancels.
type FilePicker interface {
	PickSavePath(ctx context.Context, initialDir, suggestedName string, done func(path string, err error))
}
