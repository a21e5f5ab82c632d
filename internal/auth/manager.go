package auth

import (
	"context"
	"encoding/json"

	"loginportal/internal/digest"
	"loginportal/internal/logging"
	"loginportal/internal/models"
	"loginportal/internal/provider"
	"loginportal/internal/session"
)

// User-facing messages, carried over verbatim from the original portal.
const (
	MsgInvalidCredentials = "Введены неверные данные авторизации. Попробуйте ещё раз."
	MsgLoginFailed        = "Произошла ошибка при входе. Пожалуйста, попробуйте позже."
)

// Manager owns the current session. It is either Anonymous (no user) or
// Authenticated (user present); nothing else mutates that state.
//
// Manager is not safe for concurrent use. The portal runs a single UI
// context, so overlapping logins are not expected; if they happen anyway,
// the last write wins.
type Manager struct {
	directory provider.Directory
	store     session.Store
	digest    digest.Digest
	log       logging.Logger

	user          *models.User
	authenticated bool
	errMsg        string
}

func NewManager(directory provider.Directory, store session.Store, d digest.Digest, log logging.Logger) *Manager {
	return &Manager{directory: directory, store: store, digest: d, log: log}
}

// Login fetches the user directory, verifies the credentials and, on
// success, flips the session to Authenticated and persists it. It returns
// whether the login succeeded plus a message suitable for direct display;
// the message is empty on success.
//
// A directory fetch failure and a credential mismatch both leave the
// session Anonymous; they differ only in the returned message.
func (m *Manager) Login(ctx context.Context, username, password string) (bool, string) {
	m.errMsg = ""

	users, err := m.directory.FetchUsers(ctx)
	if err != nil {
		m.log.Error(ctx, "directory fetch failed", "error", err)
		m.errMsg = MsgLoginFailed
		return false, m.errMsg
	}

	user, err := Verify(username, password, users, m.digest)
	if err != nil {
		m.errMsg = MsgInvalidCredentials
		return false, m.errMsg
	}

	m.user = user
	m.authenticated = true

	record, err := json.Marshal(models.SessionRecord{User: *user, Authenticated: true})
	if err != nil {
		m.log.Error(ctx, "session record marshal failed", "error", err)
		return true, ""
	}
	if err := m.store.Set(ctx, record); err != nil {
		// The in-memory session stays valid; only persistence is lost.
		m.log.Warn(ctx, "session record not persisted", "error", err)
	}

	return true, ""
}

// Logout returns the session to Anonymous and clears the persisted record.
func (m *Manager) Logout(ctx context.Context) error {
	m.user = nil
	m.authenticated = false
	m.errMsg = ""
	return m.store.Clear(ctx)
}

// Restore re-hydrates the session from the persisted record. It is meant to
// run once at startup. A present record is trusted as-is: there is no
// signature or expiry check, so whoever can write the storage slot can forge
// a session. An absent, unreadable or malformed record leaves the session
// Anonymous; malformed data is never surfaced as an error.
func (m *Manager) Restore(ctx context.Context) {
	raw, err := m.store.Get(ctx)
	if err != nil {
		m.log.Warn(ctx, "session record not readable", "error", err)
		return
	}
	if raw == nil {
		return
	}

	var record models.SessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		m.log.Warn(ctx, "malformed session record ignored", "error", err)
		return
	}

	m.user = &record.User
	m.authenticated = record.Authenticated
}

// User returns the authenticated user, or nil when Anonymous.
func (m *Manager) User() *models.User { return m.user }

// Authenticated reports whether a user is logged in.
func (m *Manager) Authenticated() bool { return m.authenticated }

// Err returns the message from the last failed login, for UI display.
func (m *Manager) Err() string { return m.errMsg }
