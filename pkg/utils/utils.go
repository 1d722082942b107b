package utils

import (
	"net/mail"
	"strings"
)

// IsEmail returns true if the string is a bare email address. Display-name
// forms such as "Alice <alice@example.com>" are rejected.
func IsEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	_, domain, _ := strings.Cut(email, "@")
	return domain != "" && !strings.HasPrefix(domain, ".")
}
