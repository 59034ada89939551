package interfaces

import domaintypes "keywire/internal/domain/types"

// SessionStore persists the client's current session. The key is encrypted
// under the passphrase; the record is plain JSON.
type SessionStore interface {
	SaveSession(
		passphrase string,
		record domaintypes.SessionRecord,
		key domaintypes.SessionKey,
	) error
	LoadSession(passphrase string) (
		domaintypes.SessionRecord,
		domaintypes.SessionKey,
		bool,
		error,
	)
	DeleteSession() error
}
