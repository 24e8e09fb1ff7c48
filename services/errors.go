package services

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInvalidRequest Kind = iota + 1
	KindNotFound
	KindInternal
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "INVALID_REQUEST"
	case KindNotFound:
		return "NOT_FOUND"
	case KindInternal:
		return "INTERNAL"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	default:
		return "UNKNOWN"
	}
}

// Messages are returned to clients verbatim.
const (
	MsgNoCart               = "User does not have a cart"
	MsgNoCartUsePost        = "User does not have a cart. Use POST to create cart and add a product"
	MsgProductNotInDatabase = "Product doesn't exist in database"
	MsgProductAlreadyInCart = "Product already in cart. Use the cart sidebar to update or remove product from cart"
	MsgProductNotInCart     = "Product not in cart"
	MsgInvalidQuantity      = "Quantity must be at least 1"
	MsgCreateCartFailed     = "Failed to create cart"
	MsgUpdateCartFailed     = "Failed to update cart"
	MsgCartEmpty            = "Cart is empty"
	MsgAddressNotSet        = "Address not set"
	MsgInsufficientBalance  = "Wallet balance is insufficient"
	MsgCheckoutFailed       = "Failed to checkout"
	MsgFetchCartFailed      = "Failed to fetch cart"
	MsgFetchProductFailed   = "Failed to validate product"

	MsgUserNotFound     = "User not found"
	MsgEmailTaken       = "Email already taken"
	MsgBadCredentials   = "Incorrect email or password"
	MsgForbiddenUser    = "User not authorized to access this resource"
	MsgInvalidAddress   = "Address must be at least 20 characters"
	MsgUpdateUserFailed = "Failed to update user"
	MsgCreateUserFailed = "Failed to create user"
	MsgFetchUserFailed  = "Failed to fetch user"
)

// Error is the failure type of every service operation. Message is safe to
// show to clients; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidRequest(msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// KindOf reports the Kind of err, treating unknown errors as internal.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is a service error of kind k.
func IsKind(err error, k Kind) bool {
	var svcErr *Error
	return errors.As(err, &svcErr) && svcErr.Kind == k
}
