package auth

import "errors"

// ErrInvalidCredentials covers unknown user, wrong password and inactive
// account alike. Callers must not learn which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")
