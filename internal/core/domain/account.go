package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password, or account not verified")
var ErrInvalidRole = errors.New("invalid role")
var ErrMissingFields = errors.New("required fields are missing")
var ErrPasswordRequired = errors.New("password is required for new accounts")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")
var ErrSelfDeletion = errors.New("cannot delete your own account")
var ErrNoSession = errors.New("no active session")

// Account models a portal login. The password is stored and compared in
// plaintext; the persisted store is local and trusted, and hashing it would
// change the observable behavior of the system this replaces.
type Account struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"password" bson:"password"`
	Role      string `json:"role" bson:"role"`
	Verified  bool   `json:"verified" bson:"verified"`
}

// ValidRole reports whether role is one of the two roles the portal knows.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
