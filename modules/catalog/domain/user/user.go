package user

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// User is an application account. The stored credential is a bcrypt hash on
// every write; Authenticate additionally tolerates records that still carry
// a legacy SHA-256 hex digest or a plaintext password, so pre-existing
// accounts are not locked out before their first password change. That
// tolerance is a migration shim, not a feature.
type User struct {
	id           int
	username     string
	passwordHash string
	name         string
	roleID       string
	active       bool
}

type Option func(*User)

func WithID(id int) Option {
	return func(u *User) {
		u.id = id
	}
}

func WithPasswordHash(hash string) Option {
	return func(u *User) {
		u.passwordHash = hash
	}
}

func WithActive(active bool) Option {
	return func(u *User) {
		u.active = active
	}
}

func New(username, name, roleID string, opts ...Option) *User {
	u := &User{
		username: username,
		name:     name,
		roleID:   roleID,
		active:   true,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *User) ID() int {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Name() string {
	return u.name
}

func (u *User) RoleID() string {
	return u.roleID
}

func (u *User) Active() bool {
	return u.active
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Rename(name string) {
	u.name = name
}

func (u *User) SetUsername(username string) {
	u.username = username
}

func (u *User) SetRoleID(roleID string) {
	u.roleID = roleID
}

func (u *User) SetActive(active bool) {
	u.active = active
}

// SetPassword hashes the plaintext with bcrypt and stores only the hash.
// Any legacy credential format on the record is replaced.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.passwordHash = string(hash)
	return nil
}

// CheckPassword verifies the plaintext against the stored credential.
// bcrypt hashes are compared with bcrypt; anything else goes through the
// legacy comparison (SHA-256 hex digest, then exact plaintext).
func (u *User) CheckPassword(plaintext string) bool {
	stored := u.passwordHash
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
	}
	digest := sha256.Sum256([]byte(plaintext))
	if subtle.ConstantTimeCompare([]byte(stored), []byte(hex.EncodeToString(digest[:]))) == 1 {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plaintext)) == 1
}

// HasLegacyPassword reports whether the stored credential predates bcrypt.
func (u *User) HasLegacyPassword() bool {
	return u.passwordHash != "" && !strings.HasPrefix(u.passwordHash, "$2")
}
