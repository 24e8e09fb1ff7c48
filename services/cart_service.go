package services

import (
	"context"
	"errors"
	"time"

	"github.com/mohanishp9/QKart-Backend/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UpdateOutcome int

const (
	CartUpdated UpdateOutcome = iota + 1
	ItemRemoved
)

// UpdateResult is what UpdateProductInCart returns: either the updated cart
// or a marker that the item was removed. Cart is nil when the item was
// removed.
type UpdateResult struct {
	Outcome UpdateOutcome
	Cart    *models.Cart
}

func (r UpdateResult) Removed() bool {
	return r.Outcome == ItemRemoved
}

type CheckoutEvent struct {
	Email       string          `json:"email"`
	Total       decimal.Decimal `json:"total"`
	Items       int             `json:"items"`
	WalletMoney decimal.Decimal `json:"walletMoney"`
	At          time.Time       `json:"at"`
}

type CartService struct {
	carts    CartStore
	products ProductLookup
	tx       TxRunner
	notifier CheckoutNotifier
	log      *zap.Logger
}

func NewCartService(carts CartStore, products ProductLookup, tx TxRunner, log *zap.Logger) *CartService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartService{
		carts:    carts,
		products: products,
		tx:       tx,
		log:      log,
	}
}

// WithNotifier registers n to hear about committed checkouts.
func (s *CartService) WithNotifier(n CheckoutNotifier) *CartService {
	s.notifier = n
	return s
}

func (s *CartService) GetCartByUser(ctx context.Context, user *models.User) (*models.Cart, error) {
	cart, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, Internal(MsgFetchCartFailed, err)
	}
	if cart == nil {
		return nil, NotFound(MsgNoCart)
	}
	return cart, nil
}

// AddProductToCart appends productID to the user's cart, creating the cart
// on first use. A product can be in a cart only once.
func (s *CartService) AddProductToCart(ctx context.Context, user *models.User, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, InvalidRequest(MsgInvalidQuantity)
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, Internal(MsgFetchCartFailed, err)
	}
	if cart == nil {
		cart, err = s.carts.Create(ctx, user.Email, nil, models.DefaultPaymentOption)
		if err != nil || cart == nil {
			s.log.Error("cart create failed", zap.String("email", user.Email), zap.Error(err))
			return nil, Internal(MsgCreateCartFailed, err)
		}
		s.log.Info("cart created", zap.String("email", user.Email))
	}

	if cart.IndexOf(productID) >= 0 {
		return nil, InvalidRequest(MsgProductAlreadyInCart)
	}

	cart.AddItem(models.CartItem{
		Product:  product.Snapshot(),
		Quantity: quantity,
	})

	return s.save(ctx, cart)
}

// UpdateProductInCart sets the quantity of an item already in the cart.
// A quantity of zero or less removes the item.
func (s *CartService) UpdateProductInCart(ctx context.Context, user *models.User, productID string, quantity int) (UpdateResult, error) {
	cart, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return UpdateResult{}, Internal(MsgFetchCartFailed, err)
	}
	if cart == nil {
		return UpdateResult{}, InvalidRequest(MsgNoCartUsePost)
	}

	if _, err := s.findProduct(ctx, productID); err != nil {
		return UpdateResult{}, err
	}

	idx := cart.IndexOf(productID)
	if idx < 0 {
		return UpdateResult{}, InvalidRequest(MsgProductNotInCart)
	}

	if quantity > 0 {
		cart.CartItems[idx].Quantity = quantity
		saved, err := s.save(ctx, cart)
		if err != nil {
			return UpdateResult{}, err
		}
		return UpdateResult{Outcome: CartUpdated, Cart: saved}, nil
	}

	cart.RemoveAt(idx)
	if _, err := s.save(ctx, cart); err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Outcome: ItemRemoved}, nil
}

func (s *CartService) DeleteProductFromCart(ctx context.Context, user *models.User, productID string) (*models.Cart, error) {
	cart, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, Internal(MsgFetchCartFailed, err)
	}
	if cart == nil {
		return nil, InvalidRequest(MsgNoCart)
	}

	idx := cart.IndexOf(productID)
	if idx < 0 {
		return nil, InvalidRequest(MsgProductNotInCart)
	}
	cart.RemoveAt(idx)

	return s.save(ctx, cart)
}

// Checkout debits the cart total from the user's wallet and empties the
// cart. Both writes commit together or not at all. Prices come from the
// product snapshots stored in the cart.
func (s *CartService) Checkout(ctx context.Context, user *models.User) (*models.Cart, error) {
	var (
		result *models.Cart
		event  CheckoutEvent
	)

	err := s.tx.WithinTx(ctx, func(tx Tx) error {
		cart, err := tx.Carts().FindByEmail(ctx, user.Email)
		if err != nil {
			return Internal(MsgFetchCartFailed, err)
		}
		if cart == nil {
			return NotFound(MsgNoCart)
		}
		if len(cart.CartItems) == 0 {
			return InvalidRequest(MsgCartEmpty)
		}

		account, err := tx.Accounts().FindByEmail(ctx, user.Email)
		if err != nil {
			return Internal(MsgFetchUserFailed, err)
		}
		if account == nil {
			return NotFound(MsgUserNotFound)
		}
		if !account.HasSetNonDefaultAddress() {
			return InvalidRequest(MsgAddressNotSet)
		}

		total := cart.Total()
		if total.GreaterThan(account.WalletMoney) {
			return InvalidRequest(MsgInsufficientBalance)
		}

		event = CheckoutEvent{
			Email: user.Email,
			Total: total,
			Items: len(cart.CartItems),
		}

		account.WalletMoney = account.WalletMoney.Sub(total)
		if _, err := tx.Accounts().Save(ctx, account); err != nil {
			return Internal(MsgCheckoutFailed, err)
		}

		cart.Clear()
		saved, err := tx.Carts().Save(ctx, cart)
		if err != nil {
			return Internal(MsgCheckoutFailed, err)
		}

		result = saved
		event.WalletMoney = account.WalletMoney
		return nil
	})
	if err != nil {
		var svcErr *Error
		if errors.As(err, &svcErr) {
			if svcErr.Kind == KindInternal {
				s.log.Error("checkout failed", zap.String("email", user.Email), zap.Error(err))
			}
			return nil, svcErr
		}
		s.log.Error("checkout commit failed", zap.String("email", user.Email), zap.Error(err))
		return nil, Internal(MsgCheckoutFailed, err)
	}

	user.WalletMoney = event.WalletMoney
	event.At = time.Now()
	s.log.Info("checkout completed",
		zap.String("email", user.Email),
		zap.String("total", event.Total.String()),
		zap.Int("items", event.Items),
	)
	if s.notifier != nil {
		s.notifier.CheckoutCompleted(event)
	}

	return result, nil
}

func (s *CartService) findProduct(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, Internal(MsgFetchProductFailed, err)
	}
	if product == nil {
		return nil, InvalidRequest(MsgProductNotInDatabase)
	}
	return product, nil
}

func (s *CartService) save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	saved, err := s.carts.Save(ctx, cart)
	if err != nil || saved == nil {
		s.log.Error("cart save failed", zap.String("email", cart.Email), zap.Error(err))
		return nil, Internal(MsgUpdateCartFailed, err)
	}
	return saved, nil
}
