package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mohanishp9/QKart-Backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var errBoom = errors.New("boom")

func cloneCart(c *models.Cart) *models.Cart {
	cp := *c
	cp.CartItems = append(datatypes.JSONSlice[models.CartItem]{}, c.CartItems...)
	return &cp
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	return &cp
}

type memCarts struct {
	byEmail    map[string]*models.Cart
	nextID     uint
	failCreate error
	failSave   error
	saves      int
}

func newMemCarts() *memCarts {
	return &memCarts{byEmail: map[string]*models.Cart{}}
}

func (m *memCarts) FindByEmail(_ context.Context, email string) (*models.Cart, error) {
	c, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	return cloneCart(c), nil
}

func (m *memCarts) Create(_ context.Context, email string, items []models.CartItem, paymentOption string) (*models.Cart, error) {
	if m.failCreate != nil {
		return nil, m.failCreate
	}
	m.nextID++
	c := &models.Cart{
		ID:            m.nextID,
		Email:         email,
		CartItems:     append(datatypes.JSONSlice[models.CartItem]{}, items...),
		PaymentOption: paymentOption,
	}
	m.byEmail[email] = c
	return cloneCart(c), nil
}

func (m *memCarts) Save(_ context.Context, cart *models.Cart) (*models.Cart, error) {
	if m.failSave != nil {
		return nil, m.failSave
	}
	m.saves++
	m.byEmail[cart.Email] = cloneCart(cart)
	return cloneCart(cart), nil
}

func (m *memCarts) snapshot() map[string]*models.Cart {
	out := make(map[string]*models.Cart, len(m.byEmail))
	for k, v := range m.byEmail {
		out[k] = cloneCart(v)
	}
	return out
}

type memUsers struct {
	byEmail  map[string]*models.User
	failSave error
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{byEmail: map[string]*models.User{}}
	for _, u := range users {
		m.byEmail[u.Email] = cloneUser(u)
	}
	return m
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (m *memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (m *memUsers) Create(_ context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	m.byEmail[user.Email] = cloneUser(user)
	return cloneUser(user), nil
}

func (m *memUsers) Save(_ context.Context, user *models.User) (*models.User, error) {
	if m.failSave != nil {
		return nil, m.failSave
	}
	m.byEmail[user.Email] = cloneUser(user)
	return cloneUser(user), nil
}

func (m *memUsers) UpdateAddress(_ context.Context, id, address string) (*models.User, error) {
	if m.failSave != nil {
		return nil, m.failSave
	}
	for _, u := range m.byEmail {
		if u.ID == id {
			u.Address = address
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (m *memUsers) snapshot() map[string]*models.User {
	out := make(map[string]*models.User, len(m.byEmail))
	for k, v := range m.byEmail {
		out[k] = cloneUser(v)
	}
	return out
}

type memTx struct {
	carts *memCarts
	users *memUsers
}

func (t memTx) Carts() CartStore       { return t.carts }
func (t memTx) Accounts() AccountStore { return t.users }

// memRunner restores both stores when fn fails, like a rolled back
// transaction.
type memRunner struct {
	carts     *memCarts
	users     *memUsers
	commitErr error
}

func (r *memRunner) WithinTx(_ context.Context, fn func(tx Tx) error) error {
	carts, users := r.carts.snapshot(), r.users.snapshot()
	err := fn(memTx{carts: r.carts, users: r.users})
	if err == nil {
		err = r.commitErr
	}
	if err != nil {
		r.carts.byEmail = carts
		r.users.byEmail = users
	}
	return err
}

type memProducts map[string]*models.Product

func (m memProducts) FindByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := m[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type recordingNotifier struct {
	events []CheckoutEvent
}

func (n *recordingNotifier) CheckoutCompleted(e CheckoutEvent) {
	n.events = append(n.events, e)
}

type plainHasher struct{}

func (plainHasher) Hash(pw string) (string, error) { return "hashed:" + pw, nil }

func (plainHasher) Compare(hash, pw string) error {
	if strings.TrimPrefix(hash, "hashed:") != pw {
		return errors.New("mismatch")
	}
	return nil
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
