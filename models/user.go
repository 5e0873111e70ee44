package models

// User represents a back-office account, outside the shop domain proper
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `json:"email"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
