package models

import "time"

// Role identifies the account kind. Only RoleUser accounts are ranked.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User corresponds to a row in the users table.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Cedula    string    `json:"cedula"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=6,max=255"`
	Cedula   string `json:"cedula" validate:"required,cedula"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login, profile plus a fresh token.
type AuthResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Cedula string `json:"cedula"`
	Role   Role   `json:"role"`
	Token  string `json:"token,omitempty"`
}

// ValidCedula checks an Ecuadorian cédula: exactly 10 digits where the last
// one is the check digit of the module-10 algorithm over the first nine.
func ValidCedula(cedula string) bool {
	if len(cedula) != 10 {
		return false
	}
	for _, c := range cedula {
		if c < '0' || c > '9' {
			return false
		}
	}

	coefficients := []int{2, 1, 2, 1, 2, 1, 2, 1, 2}
	sum := 0
	for i, coef := range coefficients {
		v := int(cedula[i]-'0') * coef
		if v > 9 {
			v -= 9
		}
		sum += v
	}

	check := 0
	if sum%10 != 0 {
		check = 10 - sum%10
	}
	return check == int(cedula[9]-'0')
}
