package cli

import "fmt"

// ArgumentError wraps a failure to turn the command line into a Config
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Problem with parsing arguments: %v", e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// ApplicationError wraps a failure that happened after the arguments were accepted
type ApplicationError struct {
	Err error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("Application error: %v", e.Err)
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}
