package repository

import (
	"context"

	"github.com/mohanishp9/QKart-Backend/services"
	"gorm.io/gorm"
)

// TxRunner runs a unit of work inside one gorm transaction.
type TxRunner struct {
	db *gorm.DB
}

func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

type gormTx struct {
	carts *CartRepository
	users *UserRepository
}

func (t gormTx) Carts() services.CartStore       { return t.carts }
func (t gormTx) Accounts() services.AccountStore { return t.users }

func (r *TxRunner) WithinTx(ctx context.Context, fn func(tx services.Tx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(gormTx{
			carts: NewCartRepository(tx).ForUpdate(),
			users: NewUserRepository(tx).ForUpdate(),
		})
	})
}
