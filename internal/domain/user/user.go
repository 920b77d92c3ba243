package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/darna-inc/darna/internal/domain/user/valueobjects"
	"github.com/darna-inc/darna/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is an account holder. Self-registered users carry one of the
// self-service roles; admin and employee accounts are provisioned out of band.
type User struct {
	id           uint
	fullName     string
	email        *vo.Email
	phoneNumber  string
	role         authorization.UserRole
	passwordHash string
	profile      Profile
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(fullName string, email *vo.Email, phoneNumber string, role authorization.UserRole) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if len(fullName) > 100 {
		return nil, fmt.Errorf("full name too long (max 100 characters)")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &User{
		fullName:    fullName,
		email:       email,
		phoneNumber: strings.TrimSpace(phoneNumber),
		role:        role,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, fullName string, email *vo.Email, phoneNumber string, role authorization.UserRole,
	passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		fullName:     fullName,
		email:        email,
		phoneNumber:  phoneNumber,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) FullName() string             { return u.fullName }
func (u *User) Email() *vo.Email             { return u.email }
func (u *User) PhoneNumber() string          { return u.phoneNumber }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Profile() Profile             { return u.profile }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// WithProfile attaches the stored profile details while loading a user.
func (u *User) WithProfile(p Profile) *User {
	u.profile = p
	return u
}

// UpdateDetails replaces the editable account fields.
func (u *User) UpdateDetails(fullName string, email *vo.Email, phoneNumber string, profile Profile) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return fmt.Errorf("full name is required")
	}
	if len(fullName) > 100 {
		return fmt.Errorf("full name too long (max 100 characters)")
	}
	if email == nil {
		return fmt.Errorf("email is required")
	}
	if profile.Birthday != nil && profile.Birthday.After(time.Now()) {
		return fmt.Errorf("birthday cannot be in the future")
	}

	u.fullName = fullName
	u.email = email
	u.phoneNumber = strings.TrimSpace(phoneNumber)
	u.profile = profile
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return ErrInvalidCredentials
	}
	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
