// Package auth holds the portal's session core: credential verification
// against the user directory and the login/logout/restore state machine.
package auth

import (
	"loginportal/internal/digest"
	"loginportal/internal/models"
)

// Verify scans the directory in order and returns the first record whose
// username matches exactly (case-sensitive), whose stored passphrase digest
// matches password under d, and which is active. Everything else returns
// ErrInvalidCredentials.
//
// If two directory entries share a username, the first one wins; the
// directory format does not promise uniqueness.
func Verify(username, password string, directory []models.User, d digest.Digest) (*models.User, error) {
	for i := range directory {
		u := directory[i]
		if u.Credentials.Username != username {
			continue
		}
		if !d.Verify(password, u.Credentials.Passphrase) {
			continue
		}
		if !u.Active {
			continue
		}
		return &u, nil
	}
	return nil, ErrInvalidCredentials
}
