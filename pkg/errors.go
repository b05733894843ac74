package pkg

// AppError is the transport-facing error shape carried from use cases to
// handlers. Code is a stable machine-readable identifier, Message is the
// human-readable text, Err is the underlying cause (if any) and HTTPStatus
// is the status the handler should answer with.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON error body returned to clients.
type HTTPError struct {
	Error string `json:"error"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError builds the client-facing body. Internal errors expose the
// cause's message so callers see what actually failed.
func (e *AppError) ToHTTPError() HTTPError {
	if e.Err != nil {
		return HTTPError{Error: e.Err.Error()}
	}
	return HTTPError{Error: e.Message}
}
