package model

// Recipient is a saved payee for repeat transfers.
type Recipient struct {
	ID           string
	Name         string
	Phone        string
	BankAccount  string
	BankName     string
	Relationship string
}

// User is the signed-in account holder. A nil user or the guest sentinel
// means an unauthenticated session.
type User struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Language string
}

// GuestUserID is the sentinel identifier for unauthenticated sessions.
const GuestUserID = "guest"

// IsGuest reports whether the user represents an unauthenticated session.
func (u *User) IsGuest() bool {
	return u == nil || u.ID == GuestUserID
}
