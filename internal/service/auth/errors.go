package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken is the parent of every token validation failure.
	// Callers that only need to reject a request should check for this.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = fmt.Errorf("%w: token has expired", ErrInvalidToken)

	// ErrMalformedToken indicates the token could not be parsed
	ErrMalformedToken = fmt.Errorf("%w: token is malformed", ErrInvalidToken)

	// ErrInvalidSignature indicates the signature does not match or the algorithm is not HS256
	ErrInvalidSignature = fmt.Errorf("%w: signature is invalid", ErrInvalidToken)

	// ErrTokenNotYetValid indicates the token is not yet valid (iat/nbf in the future)
	ErrTokenNotYetValid = fmt.Errorf("%w: token not yet valid", ErrInvalidToken)

	// ErrWrongTokenType indicates the type claim is not "access"
	ErrWrongTokenType = fmt.Errorf("%w: wrong token type", ErrInvalidToken)

	// ErrPasswordMismatch indicates a plaintext password does not match its hash
	ErrPasswordMismatch = errors.New("password does not match")
)
