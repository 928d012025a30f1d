package window

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// ErrWindowCreationFailed is returned when GTK cannot create the toplevel.
var ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
