// Package adapters provides the concrete identity and session storage
// implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"manassa_backend/internal/feature/auth/domain"
	"manassa_backend/internal/feature/auth/domain/entity"
	"manassa_backend/internal/feature/auth/usecase"
)

// identityGorm implements usecase.IdentityProvider on the relational
// store. It owns credential hashing; the usecase never sees passwords
// after handing them over.
type identityGorm struct {
	db *gorm.DB
}

var _ usecase.IdentityProvider = (*identityGorm)(nil)

// NewIdentityGorm creates an identityGorm bound to the given
// connection. The connection must be opened with TranslateError so
// unique-constraint violations surface as gorm.ErrDuplicatedKey.
func NewIdentityGorm(db *gorm.DB) *identityGorm {
	return &identityGorm{db: db}
}

// CreateAccount registers a new account with a bcrypt-hashed password.
func (r *identityGorm) CreateAccount(ctx context.Context, email, password, name string) (*entity.Account, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acct := &entity.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
	}
	if err := r.db.WithContext(ctx).Create(acct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailInUse
		}
		return nil, err
	}
	return acct, nil
}

// SignIn verifies the credentials. A bcrypt comparison runs even when
// the account does not exist, to keep response timing uniform.
func (r *identityGorm) SignIn(ctx context.Context, email, password string) (*entity.Account, error) {
	var acct entity.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&acct).Error

	// Dummy hash so bcrypt.CompareHashAndPassword always runs.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = acct.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &acct, nil
}

// FindByID retrieves an account by its subject id.
func (r *identityGorm) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	var acct entity.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &acct, nil
}
