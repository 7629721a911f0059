package validators

import (
	"net"
	"regexp"
	"strings"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailShapeValid checks the basic address shape only. This is the check
// the intake validator relies on; it never touches the network.
func IsEmailShapeValid(email string) bool {
	return emailShape.MatchString(email)
}

// IsEmailDomainValid resolves the domain of an address. Used at registration,
// where a DNS round-trip is acceptable.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
