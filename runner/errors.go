package runner

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is wrapped by FileReadError when the file is not UTF-8 text
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// FileReadError is returned when the searched file cannot be read
type FileReadError struct {
	Filename string
	Err      error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Filename, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
