package composables

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/user"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInUse        = errors.New("in use")
	ErrDuplicate    = errors.New("already exists")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("invalid username or password")
	ErrNoUser       = errors.New("no authenticated user in context")
)

type key int

const (
	userKey key = iota
	loggerKey
)

// WithUser attaches the authenticated user to the context. Services read it
// back for permission checks before mutating anything.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UseUser(ctx context.Context) (*user.User, error) {
	u, ok := ctx.Value(userKey).(*user.User)
	if !ok || u == nil {
		return nil, ErrNoUser
	}
	return u, nil
}

func WithLogger(ctx context.Context, log *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

func UseLogger(ctx context.Context) *logrus.Entry {
	if log, ok := ctx.Value(loggerKey).(*logrus.Entry); ok {
		return log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
