package uploads

import "errors"

var (
	// ErrNoFile is returned when an upload request carries no file payload
	ErrNoFile = errors.New("no file uploaded")

	// ErrEmptyFilename is returned when the original filename is empty after
	// sanitization
	ErrEmptyFilename = errors.New("original filename is empty")
)
