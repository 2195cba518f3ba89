package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"homestay/internal/errors"
)

const bcryptCost = 10

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered user. Owners of places and authors of reviews
// reference users by ID; the reverse lists are derived from the store at query
// time rather than held on the struct.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:50;not null"`
	LastName     string    `json:"last_name" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin" gorm:"default:false;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// NewUser validates every field and hashes the password. If any field is
// invalid no user is produced.
func NewUser(firstName, lastName, email, password string, isAdmin bool) (*User, error) {
	u := &User{IsAdmin: isAdmin}
	if err := u.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := u.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetFirstName validates and assigns the first name.
func (u *User) SetFirstName(v string) error {
	if v == "" {
		return errors.Validation("first name cannot be empty")
	}
	if err := maxLength("first name", v, 50); err != nil {
		return err
	}
	u.FirstName = v
	return nil
}

// SetLastName validates and assigns the last name.
func (u *User) SetLastName(v string) error {
	if v == "" {
		return errors.Validation("last name cannot be empty")
	}
	if err := maxLength("last name", v, 50); err != nil {
		return err
	}
	u.LastName = v
	return nil
}

// SetEmail validates address syntax and assigns the email. Uniqueness is
// enforced by the store's unique index, not here.
func (u *User) SetEmail(v string) error {
	if !emailPattern.MatchString(v) {
		return errors.Validation("invalid email format")
	}
	u.Email = v
	return nil
}

// SetPassword hashes and stores the password digest. The plaintext is never
// retained.
func (u *User) SetPassword(v string) error {
	if v == "" {
		return errors.Validation("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(v), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword reports whether the plaintext matches the stored digest.
func (u *User) VerifyPassword(v string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(v)) == nil
}

// UserUpdate carries a partial field merge; nil fields stay untouched.
type UserUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// TouchesCredentials reports whether the update modifies credential fields.
func (in UserUpdate) TouchesCredentials() bool {
	return in.Email != nil || in.Password != nil
}

// ApplyUpdate re-validates only the touched fields. The merge is atomic: on
// the first violation the receiver is left unchanged.
func (u *User) ApplyUpdate(in UserUpdate) error {
	next := *u
	if in.FirstName != nil {
		if err := next.SetFirstName(*in.FirstName); err != nil {
			return err
		}
	}
	if in.LastName != nil {
		if err := next.SetLastName(*in.LastName); err != nil {
			return err
		}
	}
	if in.Email != nil {
		if err := next.SetEmail(*in.Email); err != nil {
			return err
		}
	}
	if in.Password != nil {
		if err := next.SetPassword(*in.Password); err != nil {
			return err
		}
	}
	*u = next
	return nil
}
