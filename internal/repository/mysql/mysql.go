package mysql

import (
	"github.com/google/uuid"

	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

// IDGenerator returns the random part of a new identifier.
type IDGenerator func() string

// UUIDGenerator is the IDGenerator used in production.
func UUIDGenerator() string {
	return uuid.NewString()
}

// Models lists the tables owned by this service, in dependency order.
func Models() []any {
	return []any{
		&model.User{},
		&model.Thread{},
		&model.Comment{},
		&model.Reply{},
		&model.CommentLike{},
	}
}
