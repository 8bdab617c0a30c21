package profiles

import (
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
)

const minPasswordLength = 8

type Profile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignupParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p SignupParams) Validate() error {
	if p.Email == "" {
		return pkg.NewValidationError("email is required")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return pkg.NewValidationError("email is invalid")
	}
	if len(p.Password) < minPasswordLength {
		return pkg.NewValidationError("password must have at least %d characters", minPasswordLength)
	}
	if len(p.Name) > 100 {
		return pkg.NewValidationError("name too long")
	}
	return nil
}

func (p LoginParams) Validate() error {
	if p.Email == "" || p.Password == "" {
		return pkg.NewValidationError("email and password are required")
	}
	return nil
}

// defaultName is used when the user signs up without a display name.
func defaultName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
