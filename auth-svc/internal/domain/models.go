package domain

import "fmt"

type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleRestaurant UserRole = "restaurant"
)

func ParseUserRole(s string) (UserRole, error) {
	switch role := UserRole(s); role {
	case RoleUser, RoleRestaurant:
		return role, nil
	default:
		return "", fmt.Errorf("unknown user role %q", s)
	}
}

// AuthSession is issued by RequestOTP and carries the code the diner has to
// echo back.
type AuthSession struct {
	Token string   `json:"token"`
	Role  UserRole `json:"role"`
	Phone string   `json:"phone"`
	OTP   string   `json:"otp"`
}

type AuthState struct {
	Token      string       `json:"token"`
	Phone      string       `json:"phone"`
	Session    *AuthSession `json:"session"`
	IsLoggedIn bool         `json:"is_logged_in"`
}

type UserProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
