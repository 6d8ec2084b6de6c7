package entity

import (
	"gorm.io/gorm"
)

// Customer is the ordering profile behind a User, created lazily on the
// first cart interaction. At most one per user.
type Customer struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	Avatar     []byte `json:"-" gorm:"column:avatar"`
	AvatarType string `json:"-" gorm:"column:avatar_type"`

	Orders []Order `json:"-"`
}
