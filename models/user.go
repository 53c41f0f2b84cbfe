package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User mirrors the identity provider's profile. The role lives on the record
// so admin checks are a policy lookup, not a hard-coded id comparison.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"` // provider uid
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Provider  string    `json:"provider"`
	Role      Role      `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Cart      Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders"`
	CreatedAt time.Time `json:"created_at"`
}
