package model

// UserModel mirrors the 'users' table. The password column holds an opaque
// credential: bcrypt for rows written by this system, plaintext for rows
// inherited from the legacy database until their first login migrates them.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
