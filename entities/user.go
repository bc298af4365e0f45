package entities

type User struct {
	Username string  `gorm:"primaryKey;type:varchar(255)" json:"username"`
	Password string  `gorm:"not null" json:"-"`
	Email    *string `gorm:"type:varchar(255)" json:"email,omitempty"`

	Timestamp
}

func (User) TableName() string {
	return "users"
}
