package response

import "github.com/Guyuepp/forum-api/domain"

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedCommentFromDomain(a domain.AddedComment) AddedComment {
	return AddedComment{ID: a.ID, Content: a.Content, Owner: a.Owner}
}

type Comment struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Date      string `json:"date"`
	Content   string `json:"content"`
	LikeCount int64  `json:"likeCount"`
	// Replies 子评论列表，按时间升序
	Replies []Reply `json:"replies"`
}

func NewCommentFromDomain(c domain.CommentDetail) Comment {
	replies := make([]Reply, len(c.Replies))
	for i := range c.Replies {
		replies[i] = NewReplyFromDomain(c.Replies[i])
	}
	return Comment{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date.Format(DateTimeFormat),
		Content:   c.Content,
		LikeCount: c.LikeCount,
		Replies:   replies,
	}
}
