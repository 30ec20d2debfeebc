package services

import (
	"context"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence"
	"github.com/grupo-altia/accessdesk/pkg/composables"
)

type AuthService struct {
	users *persistence.UserRepository
}

func NewAuthService(users *persistence.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate resolves a username/password pair to a user. Inactive
// accounts and unknown usernames fail identically; the error never says
// which check failed and the password is never logged.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	log := composables.UseLogger(ctx).WithField("username", username)
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		log.Info("login rejected: unknown username")
		return nil, composables.ErrUnauthorized
	}
	if !u.Active() {
		log.Info("login rejected: account inactive")
		return nil, composables.ErrUnauthorized
	}
	if !u.CheckPassword(password) {
		log.Info("login rejected: bad credentials")
		return nil, composables.ErrUnauthorized
	}
	if u.HasLegacyPassword() {
		log.Warn("account authenticated with a legacy password format; change it to store a bcrypt hash")
	}
	log.Info("login accepted")
	return u, nil
}
