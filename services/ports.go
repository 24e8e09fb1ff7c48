package services

import (
	"context"

	"github.com/mohanishp9/QKart-Backend/models"
)

// Lookups return (nil, nil) when the record does not exist.

type CartStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Cart, error)
	Create(ctx context.Context, email string, items []models.CartItem, paymentOption string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) (*models.Cart, error)
}

type ProductLookup interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Save(ctx context.Context, user *models.User) (*models.User, error)
	// UpdateAddress writes only the address and returns the fresh row, or
	// nil when id is unknown.
	UpdateAddress(ctx context.Context, id, address string) (*models.User, error)
}

// Tx exposes the stores bound to a single database transaction. Reads made
// through it lock the rows they return until the transaction ends.
type Tx interface {
	Carts() CartStore
	Accounts() AccountStore
}

// TxRunner commits when fn returns nil and rolls back otherwise.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

type CheckoutNotifier interface {
	CheckoutCompleted(event CheckoutEvent)
}
