package domain

// AppError is the one error type that crosses the service boundary. Code is
// the HTTP status the transport layer answers with; Err keeps the underlying
// cause for logging without leaking it to the client.
type AppError struct {
	Code int
	Msg  string
	Err  error
}

func (e *AppError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error"
}

func (e *AppError) Unwrap() error { return e.Err }

const (
	CodeInvalidInput    = 400
	CodeUnauthenticated = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeInternal        = 500
)

func InvalidInput(msg string) error { return &AppError{Code: CodeInvalidInput, Msg: msg} }

func Unauthenticated(msg string) error { return &AppError{Code: CodeUnauthenticated, Msg: msg} }

func Forbidden(msg string) error { return &AppError{Code: CodeForbidden, Msg: msg} }

func NotFound(msg string) error { return &AppError{Code: CodeNotFound, Msg: msg} }

func Conflict(msg string) error { return &AppError{Code: CodeConflict, Msg: msg} }

func Internal(msg string, err error) error {
	return &AppError{Code: CodeInternal, Msg: msg, Err: err}
}

// The original API reports these two as plain 400s, not 409s. Kept that way.
func AlreadyBorrowed() error {
	return &AppError{Code: CodeInvalidInput, Msg: "you already borrowed this book"}
}

func AlreadyReturned() error {
	return &AppError{Code: CodeInvalidInput, Msg: "book already returned"}
}
