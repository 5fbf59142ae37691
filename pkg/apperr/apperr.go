// Package apperr carries coded application errors from the service layer to
// the API boundary. Codes follow HTTP semantics so the GraphQL layer can
// expose them as errors[].extensions.code without a second taxonomy.
package apperr

import "errors"

const (
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeServerError  = 500
)

// CodeNames maps codes to the identifiers surfaced in GraphQL extensions.
var CodeNames = map[int]string{
	CodeBadRequest:   "BAD_REQUEST",
	CodeUnauthorized: "UNAUTHENTICATED",
	CodeForbidden:    "FORBIDDEN",
	CodeNotFound:     "NOT_FOUND",
	CodeServerError:  "INTERNAL_SERVER_ERROR",
}

type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "application error"
}

func (e *Error) Unwrap() error { return e.Err }

// Extensions implements graphql-go's gqlerrors.ExtendedError so the code
// reaches the response payload. The wrapped cause never does.
func (e *Error) Extensions() map[string]interface{} {
	name := CodeNames[e.Code]
	if name == "" {
		name = CodeNames[CodeServerError]
	}
	return map[string]interface{}{"code": name}
}

func BadRequest(msg string) error   { return &Error{Code: CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Code: CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Error{Code: CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &Error{Code: CodeNotFound, Msg: msg} }

// Internal wraps an unexpected failure. The cause stays server-side; callers
// only ever see msg.
func Internal(msg string, err error) error {
	return &Error{Code: CodeServerError, Msg: msg, Err: err}
}

// CodeOf reports the application code of err, or CodeServerError for
// untyped errors.
func CodeOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeServerError
}

func IsNotFound(err error) bool { return CodeOf(err) == CodeNotFound }
