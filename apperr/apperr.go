// Package apperr defines the typed domain errors surfaced by the
// service layer and the uniform error body rendered to clients.
package apperr

import "fmt"

// Kind identifies a domain failure condition.
type Kind string

const (
	UserNotFound         Kind = "UserNotFound"
	ProductNotFound      Kind = "ProductNotFound"
	CartItemNotFound     Kind = "NoSuchItemInCartExists"
	WishlistItemNotFound Kind = "NoSuchItemInWishlistExists"
	DuplicateRecord      Kind = "DuplicateRecord"
	RoleNotFound         Kind = "UserRoleNotFound"
	DeletionFailure      Kind = "ProductDeletion"
	Unexpected           Kind = "Unexpected"
)

// Error is created once at the first failing precondition and returned
// as-is up to the transport; no intermediate re-wrapping.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that carries a lower-level cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, or Unexpected for anything that is
// not an *Error.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return Unexpected
}

// Is lets callers match on kind with errors.Is against a bare kinded
// error value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
}

// Status is the uniform error body: every failure, domain not-found
// conditions included, renders with code 500.
type Status struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Details string `json:"details"`
}

// StatusOf converts any error into the wire error body.
func StatusOf(err error) Status {
	msg := err.Error()
	if e, ok := err.(*Error); ok {
		msg = e.Message
	}
	return Status{
		Message: msg,
		Code:    500,
		Details: string(KindOf(err)) + ": " + msg,
	}
}
