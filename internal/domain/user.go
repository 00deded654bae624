package domain

// User is a back-office account. Credentials are stored and compared as
// plain text, matching the legacy system; see the login notes in DESIGN.md.
type User struct {
	ID       string
	Username string
	Password string
	Name     string
	Email    string
}
