package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(6);not null"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null;index"`
	OwnerID   string    `gorm:"column:owner_id;type:varchar(50);not null"`
	IsDeleted *bool     `gorm:"column:is_deleted"`
	LikeCount int64     `gorm:"column:like_count;not null;default:0"`

	Thread *Thread `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentWithUsername struct {
	Comment
	Username string `gorm:"column:username"`
}

func (m *CommentWithUsername) ToDomain() domain.Comment {
	return domain.Comment{
		ID:            m.ID,
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
		ThreadID:      m.ThreadID,
		OwnerID:       m.OwnerID,
		OwnerUsername: m.Username,
		State:         domain.DeletionStateOf(m.IsDeleted),
		LikeCount:     m.LikeCount,
	}
}

func (m *Comment) ToAdded() domain.AddedComment {
	return domain.AddedComment{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.OwnerID,
	}
}
