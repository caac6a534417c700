package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(6);not null"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;index"`
	OwnerID   string    `gorm:"column:owner_id;type:varchar(50);not null"`
	IsDeleted *bool     `gorm:"column:is_deleted"`

	Comment *Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

func (Reply) TableName() string {
	return "replies"
}

type ReplyWithUsername struct {
	Reply
	Username string `gorm:"column:username"`
}

func (m *ReplyWithUsername) ToDomain() domain.Reply {
	return domain.Reply{
		ID:            m.ID,
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
		CommentID:     m.CommentID,
		OwnerID:       m.OwnerID,
		OwnerUsername: m.Username,
		State:         domain.DeletionStateOf(m.IsDeleted),
	}
}

func (m *Reply) ToAdded() domain.AddedReply {
	return domain.AddedReply{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.OwnerID,
	}
}
