package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func init() {
	// cost and walletMoney go on the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Cart is the single cart document of a user. Items live in one JSON column
// so every save replaces the whole document.
type Cart struct {
	ID            uint                          `gorm:"primaryKey" json:"-"`
	Email         string                        `gorm:"uniqueIndex;not null" json:"email"` // one cart per user
	CartItems     datatypes.JSONSlice[CartItem] `gorm:"not null" json:"cartItems"`
	PaymentOption string                        `gorm:"not null" json:"paymentOption"`
	CreatedAt     time.Time                     `json:"createdAt"`
	UpdatedAt     time.Time                     `json:"updatedAt"`
}

type CartItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

func (c *Cart) BeforeSave(tx *gorm.DB) error {
	if c.CartItems == nil {
		c.CartItems = datatypes.JSONSlice[CartItem]{}
	}
	return nil
}

// IndexOf returns the position of the item holding productID, or -1.
func (c *Cart) IndexOf(productID string) int {
	return slices.IndexFunc(c.CartItems, func(item CartItem) bool {
		return item.Product.ID == productID
	})
}

func (c *Cart) AddItem(item CartItem) {
	c.CartItems = append(c.CartItems, item)
}

// RemoveAt drops the item at i and keeps the order of the rest.
func (c *Cart) RemoveAt(i int) {
	c.CartItems = slices.Delete(c.CartItems, i, i+1)
}

func (c *Cart) Clear() {
	c.CartItems = datatypes.JSONSlice[CartItem]{}
}

// Total sums snapshot cost times quantity over all items.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.CartItems {
		total = total.Add(item.Product.Cost.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
