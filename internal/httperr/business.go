package httperr

import "errors"

// BusinessError is a domain refusal identified by a stable code such as
// "invalid_state" or "slot_unavailable". Codes travel unchanged from the
// booking domain to the wire; handlers pick the HTTP status.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given refusal code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
