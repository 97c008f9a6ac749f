package application

// Kind classifies an expected service failure so the HTTP layer can
// map it to a status code without inspecting error text.
type Kind int

const (
	KindValidation Kind = iota + 1 // 400
	KindAuthentication             // 401
	KindNotFound                   // 404
	KindConflict                   // 409
	KindUpstream                   // 500
	KindInternal                   // 500
)

// Error is the typed outcome returned by services. Key names a
// localized user-facing message; Err carries the underlying cause for
// server-side logs and is never sent to the client.
type Error struct {
	Kind Kind
	Key  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Key + ": " + e.Err.Error()
	}
	return e.Key
}

func (e *Error) Unwrap() error { return e.Err }

func ErrValidation(key string) *Error     { return &Error{Kind: KindValidation, Key: key} }
func ErrAuthentication(key string) *Error { return &Error{Kind: KindAuthentication, Key: key} }
func ErrNotFound(key string) *Error       { return &Error{Kind: KindNotFound, Key: key} }
func ErrConflict(key string) *Error       { return &Error{Kind: KindConflict, Key: key} }

func ErrUpstream(key string, err error) *Error {
	return &Error{Kind: KindUpstream, Key: key, Err: err}
}

func ErrInternal(err error) *Error {
	return &Error{Kind: KindInternal, Key: "server.error", Err: err}
}
