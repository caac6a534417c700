package model

// User is the read side of the users table; accounts are managed by the auth service.
type User struct {
	ID       string `gorm:"primaryKey;type:varchar(50)"`
	Username string `gorm:"type:varchar(50);not null;uniqueIndex"`
}

func (User) TableName() string {
	return "users"
}
