package accounts

import (
	"errors"
	"strings"

	"github.com/projecto-dev/projecto/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired     = errors.New("users must have an email address")
	ErrSuperuserNotStaff = errors.New("superuser must have is_staff=true")
	ErrSuperuserFlag     = errors.New("superuser must have is_superuser=true")
)

type CreateUserParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Frontend  bool
	Backend   bool

	// Flag overrides for administrative provisioning. Nil means default
	// (active, not staff, not superuser).
	IsActive    *bool
	IsStaff     *bool
	IsSuperuser *bool
}

// NormalizeEmail lowercases the domain part of an email address and strips
// surrounding whitespace. The local part is preserved as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")

	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}

// CreateUser persists a new account with a normalized email and a bcrypt
// password hash. Duplicate emails surface as gorm.ErrDuplicatedKey.
func CreateUser(db *gorm.DB, params CreateUserParams) (*models.User, error) {
	if strings.TrimSpace(params.Email) == "" {
		return nil, ErrEmailRequired
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        NormalizeEmail(params.Email),
		PasswordHash: string(passwordHash),
		Frontend:     params.Frontend,
		Backend:      params.Backend,
		IsActive:     true,
	}

	if params.IsActive != nil {
		user.IsActive = *params.IsActive
	}

	if params.IsStaff != nil {
		user.IsStaff = *params.IsStaff
	}

	if params.IsSuperuser != nil {
		user.IsSuperuser = *params.IsSuperuser
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateSuperuser provisions an administrative account. Staff, superuser and
// active flags are forced on; an explicit false override is refused.
func CreateSuperuser(db *gorm.DB, params CreateUserParams) (*models.User, error) {
	if params.IsStaff != nil && !*params.IsStaff {
		return nil, ErrSuperuserNotStaff
	}

	if params.IsSuperuser != nil && !*params.IsSuperuser {
		return nil, ErrSuperuserFlag
	}

	enabled := true
	params.IsActive = &enabled
	params.IsStaff = &enabled
	params.IsSuperuser = &enabled

	return CreateUser(db, params)
}
