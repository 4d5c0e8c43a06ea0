package pkg

// AppError is the domain error envelope handlers translate into HTTP
// responses. Code is a stable machine-readable identifier; Message is safe to
// show to the caller; Err (when present) is internal context that never
// leaves the service.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError returns the wire representation. Internal error detail is
// deliberately excluded.
func (e *AppError) ToHTTPError() map[string]string {
	return map[string]string{
		"code":    e.Code,
		"message": e.Message,
	}
}
