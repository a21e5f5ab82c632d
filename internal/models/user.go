// Package models defines the portal's data types: directory users,
// catalog products and the persisted session record.
package models

// Credentials holds a directory user's login name and passphrase digest.
// Passphrase stores the digest, never the plaintext.
type Credentials struct {
	Username   string `json:"username"`
	Passphrase string `json:"passphrase"`
}

// User is a single read-only record from the user directory.
type User struct {
	Name        string      `json:"name"`
	Surname     string      `json:"surname"`
	Credentials Credentials `json:"credentials"`
	Active      bool        `json:"active"`
	Created     Date        `json:"created"`
}

// SessionRecord is the shape persisted to the session store on login
// and read back on restore. It carries no signature or expiry; whoever
// can write the storage slot can forge a session.
type SessionRecord struct {
	User          User `json:"user"`
	Authenticated bool `json:"isAuthenticated"`
}
