package model

type CommentLike struct {
	ID        string `gorm:"primaryKey;type:varchar(50)"`
	CommentID string `gorm:"column:comment_id;type:varchar(50);not null;uniqueIndex:unique_comment_and_owner"`
	OwnerID   string `gorm:"column:owner_id;type:varchar(50);not null;uniqueIndex:unique_comment_and_owner"`

	Comment *Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
