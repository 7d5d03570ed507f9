package usecase

import "errors"

var (
	ErrBadInput = errors.New("bad input")
	ErrUpstream = errors.New("completion failed")
	ErrStorage  = errors.New("storage failed")
	ErrNotFound = errors.New("not found")
)

// InputError carries a caller-facing message for a rejected submission.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrBadInput
}

func badInput(message string) error {
	return &InputError{Message: message}
}

const (
	MsgNoResumeContent = "No resume content provided"
	MsgEmptyResume     = "Resume content is empty"
	MsgURLRequired     = "URL is required"
	MsgInvalidURL      = "Invalid URL"
)
