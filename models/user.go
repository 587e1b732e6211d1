package models

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is keyed by phone number; the number is an opaque identity,
// never arithmetic.
type User struct {
	PhoneNo   int64  `gorm:"column:phone_no;primaryKey" json:"phoneNo"`
	UserName  string `gorm:"column:user_name;not null" json:"userName"`
	UserEmail string `gorm:"column:user_email;not null" json:"userEmail"`
	Role      Role   `gorm:"column:role" json:"role"`
}

// TableName keeps the legacy table name.
func (User) TableName() string {
	return "users1"
}
