package scope

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken covers every reason a credential is rejected.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken wraps ErrInvalidToken.
	ErrExpiredToken = fmt.Errorf("%w: token is expired", ErrInvalidToken)
	ErrWeakSecret   = errors.New("scope: signing secret is too short")
)
