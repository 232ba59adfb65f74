package auth

const RoleAdmin = "ADMIN"

// Admin is the single account allowed to use the system. PasswordHash is a
// bcrypt hash.
type Admin struct {
	Email        string
	Name         string
	PasswordHash string
}
