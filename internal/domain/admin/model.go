package admin

import "time"

// Credential is the single admin login. The table holds exactly one row,
// seeded with a bcrypt hash of the default password on first boot.
type Credential struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Credential) TableName() string { return "admin" }
