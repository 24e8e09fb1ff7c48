package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mohanishp9/QKart-Backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	db   *gorm.DB
	lock bool
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// ForUpdate returns a copy whose reads take a row lock. Only meaningful
// inside a transaction.
func (r *CartRepository) ForUpdate() *CartRepository {
	return &CartRepository{db: r.db, lock: true}
}

func (r *CartRepository) FindByEmail(ctx context.Context, email string) (*models.Cart, error) {
	q := r.db.WithContext(ctx)
	if r.lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var cart models.Cart
	if err := q.Where("email = ?", email).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find cart %s: %w", email, err)
	}
	return &cart, nil
}

// Create inserts an empty or pre-filled cart. If another request created the
// cart first, the existing one is returned.
func (r *CartRepository) Create(ctx context.Context, email string, items []models.CartItem, paymentOption string) (*models.Cart, error) {
	cart := models.Cart{
		Email:         email,
		CartItems:     append(datatypes.JSONSlice[models.CartItem]{}, items...),
		PaymentOption: paymentOption,
	}

	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByEmail(ctx, email)
		}
		return nil, fmt.Errorf("create cart %s: %w", email, err)
	}
	return &cart, nil
}

// Save writes the whole cart document.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if err := r.db.WithContext(ctx).Save(cart).Error; err != nil {
		return nil, fmt.Errorf("save cart %s: %w", cart.Email, err)
	}
	return cart, nil
}
