package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Title     string    `gorm:"type:text;not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(6);not null"`
	OwnerID   string    `gorm:"column:owner_id;type:varchar(50);not null;index"`
}

func (Thread) TableName() string {
	return "threads"
}

// ThreadWithUsername is a thread row joined with users.username.
type ThreadWithUsername struct {
	Thread
	Username string `gorm:"column:username"`
}

func (m *ThreadWithUsername) ToDomain() domain.Thread {
	return domain.Thread{
		ID:            m.ID,
		Title:         m.Title,
		Body:          m.Body,
		CreatedAt:     m.CreatedAt,
		OwnerID:       m.OwnerID,
		OwnerUsername: m.Username,
	}
}

func (m *Thread) ToAdded() domain.AddedThread {
	return domain.AddedThread{
		ID:    m.ID,
		Title: m.Title,
		Owner: m.OwnerID,
	}
}
