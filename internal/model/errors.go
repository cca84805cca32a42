package model

import "errors"

// ErrorKind classifies a failure so that transports can map it to a
// status code or a structured {ok:false, reason} reply without string
// matching.
type ErrorKind string

const (
	KindValidation          ErrorKind = "validation"
	KindNotFound            ErrorKind = "not_found"
	KindAuthorization       ErrorKind = "authorization"
	KindParticipantMismatch ErrorKind = "participant_mismatch"
	KindPersistence         ErrorKind = "persistence"
)

type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func NewAuthorizationError(msg string) *Error {
	return &Error{Kind: KindAuthorization, Msg: msg}
}

func NewParticipantMismatchError(msg string) *Error {
	return &Error{Kind: KindParticipantMismatch, Msg: msg}
}

func NewPersistenceError(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Msg: msg, Err: err}
}

// KindOf reports the kind of err. Unclassified errors count as
// persistence failures: anything unexpected out of the store layer must
// never surface as a transport fault.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}
