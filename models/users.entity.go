package models

// RoleAdmin is the only role name with special meaning: the /admin
// endpoint compares against it case-sensitively.
const RoleAdmin = "Admin"

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email        string `gorm:"type:varchar(191);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	RoleID       uint   `gorm:"not null;index" json:"role_id"`
	Role         *Role  `gorm:"foreignKey:RoleID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
