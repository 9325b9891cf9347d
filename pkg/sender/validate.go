package sender

import "regexp"

// emailRegex is intentionally permissive: real validation happens at the
// provider, this only rejects obviously malformed addresses before a
// network round trip is spent on them.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether the address looks like a deliverable email
// address.
func ValidEmail(address string) bool {
	return emailRegex.MatchString(address)
}
