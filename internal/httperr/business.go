package httperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

// BusinessError is an expected failure of a use case. Handlers translate it
// into a response status by Kind; anything else becomes a 500.
type BusinessError struct {
	Kind    Kind
	Code    string
	Field   string
	Message string
}

func (e BusinessError) Error() string {
	switch {
	case e.Field != "" && e.Message != "":
		return e.Code + " (" + e.Field + "): " + e.Message
	case e.Message != "":
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// ErrBusiness is a validation failure without field detail.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrValidation(field, code, message string) error {
	return BusinessError{Kind: KindValidation, Field: field, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}

func IsKind(err error, kind Kind) bool {
	be, ok := AsBusiness(err)
	return ok && be.Kind == kind
}
