package domain

import (
	"errors"
	"fmt"
)

// ErrInfected is returned by virus scanners when an upload carries a known threat.
var ErrInfected = errors.New("file is infected")

type ErrorKind string

const (
	ErrorKindUnsupportedType  ErrorKind = "unsupported_type"
	ErrorKindRemoteRejected   ErrorKind = "remote_rejected"
	ErrorKindTransportFailure ErrorKind = "transport_failure"
)

// SubmissionError is returned by the submission client. Message is safe to show to users.
type SubmissionError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
