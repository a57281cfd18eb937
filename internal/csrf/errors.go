package csrf

import (
	"errors"
	"fmt"
)

// ErrAuthorizationMismatch is the kind shared by every verification failure.
// Callers that only need to know "the request is not authorized" test for it
// with errors.Is.
var ErrAuthorizationMismatch = errors.New("authorization mismatch")

var (
	// ErrNoSuchContext is returned when the session holds no token under the
	// supplied name: the name was never issued, was already used, or the
	// session expired.
	ErrNoSuchContext = fmt.Errorf("%w: no such CSRF context", ErrAuthorizationMismatch)

	// ErrTokenMismatch is returned when a token exists under the supplied name
	// but differs from the supplied token.
	ErrTokenMismatch = fmt.Errorf("%w: CSRF token does not match", ErrAuthorizationMismatch)
)
