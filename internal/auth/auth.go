// ABOUTME: Toy login gate backed by a durable-scope flag
// ABOUTME: Fixed demo credentials, no real authentication

package auth

import (
	"errors"

	"github.com/seyeon-q/soomgil/internal/store"
)

// Key is the durable-scope key holding the login flag.
const Key = "soomgil.auth"

// Demo credentials. The gate exists for flow parity, not security.
const (
	demoEmail    = "test@gmail.com"
	demoPassword = "1234"
)

// ErrBadCredentials is returned for any credential pair but the demo one.
var ErrBadCredentials = errors.New("email or password is incorrect")

// Login validates the credentials and persists the logged-in flag.
func Login(durable store.Store, email, password string) error {
	if email != demoEmail || password != demoPassword {
		return ErrBadCredentials
	}
	return durable.Set(Key, []byte("1"))
}

// Logout clears the logged-in flag.
func Logout(durable store.Store) error {
	return durable.Delete(Key)
}

// IsLoggedIn reports whether the login flag is set. Storage trouble reads as
// logged out.
func IsLoggedIn(durable store.Store) bool {
	val, err := durable.Get(Key)
	return err == nil && string(val) == "1"
}
