package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// DefaultAddress marks an account whose shipping address was never set.
	DefaultAddress = "ADDRESS_NOT_SET"
	// DefaultPaymentOption is stamped on every new cart.
	DefaultPaymentOption = "PAYMENT_OPTION_DEFAULT"
)

// DefaultWalletMoney is the opening balance of a new account.
var DefaultWalletMoney = decimal.NewFromInt(500)

type User struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	Name        string          `gorm:"not null" json:"name"`
	Email       string          `gorm:"uniqueIndex;not null" json:"email"`
	Password    string          `gorm:"not null" json:"-"`
	WalletMoney decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"walletMoney"`
	Address     string          `gorm:"not null" json:"address"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Address == "" {
		u.Address = DefaultAddress
	}
	return nil
}

func (u *User) HasSetNonDefaultAddress() bool {
	return u.Address != DefaultAddress
}
