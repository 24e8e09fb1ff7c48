package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/mohanishp9/QKart-Backend/models"
	"go.uber.org/zap"
)

const minAddressLength = 20

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,password"`
}

// AccountService owns account creation and updates. Validation is done by
// pure functions before anything is written; hashing is injected.
type AccountService struct {
	users    AccountStore
	hasher   Hasher
	validate *validator.Validate
	log      *zap.Logger
}

func NewAccountService(users AccountStore, hasher Hasher, log *zap.Logger) *AccountService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountService{
		users:    users,
		hasher:   hasher,
		validate: NewValidator(),
		log:      log,
	}
}

// NewValidator returns a validator that also knows the "password" tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return ValidPassword(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register password validation: %v", err))
	}
	return v
}

// ValidPassword requires at least one letter and one digit.
func ValidPassword(pw string) bool {
	var letter, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

func ValidAddress(address string) bool {
	address = strings.TrimSpace(address)
	return len(address) >= minAddressLength && address != models.DefaultAddress
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	if err := s.validate.Struct(in); err != nil {
		return nil, InvalidRequest(validationMessage(err))
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, Internal(MsgFetchUserFailed, err)
	}
	if existing != nil {
		return nil, InvalidRequest(MsgEmailTaken)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, Internal(MsgCreateUserFailed, err)
	}

	user, err := s.users.Create(ctx, &models.User{
		Name:        in.Name,
		Email:       in.Email,
		Password:    hash,
		WalletMoney: models.DefaultWalletMoney,
		Address:     models.DefaultAddress,
	})
	if err != nil {
		s.log.Error("user create failed", zap.String("email", in.Email), zap.Error(err))
		return nil, Internal(MsgCreateUserFailed, err)
	}

	s.log.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, Internal(MsgFetchUserFailed, err)
	}
	if user == nil || s.hasher.Compare(user.Password, password) != nil {
		return nil, Unauthorized(MsgBadCredentials)
	}
	return user, nil
}

func (s *AccountService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, Internal(MsgFetchUserFailed, err)
	}
	if user == nil {
		return nil, NotFound(MsgUserNotFound)
	}
	return user, nil
}

func (s *AccountService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, Internal(MsgFetchUserFailed, err)
	}
	if user == nil {
		return nil, NotFound(MsgUserNotFound)
	}
	return user, nil
}

// SetAddress replaces the shipping address of user. Only the address
// column is written; the wallet on user may be stale.
func (s *AccountService) SetAddress(ctx context.Context, user *models.User, address string) (*models.User, error) {
	if !ValidAddress(address) {
		return nil, InvalidRequest(MsgInvalidAddress)
	}
	address = strings.TrimSpace(address)

	saved, err := s.users.UpdateAddress(ctx, user.ID, address)
	if err != nil {
		return nil, Internal(MsgUpdateUserFailed, err)
	}
	if saved == nil {
		return nil, NotFound(MsgUserNotFound)
	}
	user.Address = saved.Address
	user.WalletMoney = saved.WalletMoney
	return saved, nil
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "\"" + field + "\" is required"
	case "email":
		return "\"" + field + "\" must be a valid email"
	case "min":
		return "\"" + field + "\" must be at least " + fe.Param() + " characters"
	case "password":
		return "password must contain at least 1 letter and 1 number"
	default:
		return "\"" + field + "\" is invalid"
	}
}
