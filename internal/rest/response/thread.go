package response

import "github.com/Guyuepp/forum-api/domain"

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThreadFromDomain(a domain.AddedThread) AddedThread {
	return AddedThread{ID: a.ID, Title: a.Title, Owner: a.Owner}
}

type Thread struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

// NewThreadFromDomain: Domain -> Response
func NewThreadFromDomain(t domain.ThreadDetail) Thread {
	comments := make([]Comment, len(t.Comments))
	for i := range t.Comments {
		comments[i] = NewCommentFromDomain(t.Comments[i])
	}
	return Thread{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date.Format(DateTimeFormat),
		Username: t.Username,
		Comments: comments,
	}
}
