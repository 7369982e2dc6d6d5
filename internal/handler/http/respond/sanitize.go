package respond

import (
	"regexp"
)

var (
	// credentials embedded in DSN-style URLs
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// bcrypt hashes, in case a storage error ever echoes a row back
	bcryptHashPattern = regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)
)

// SanitizeError returns the error message with sensitive values masked.
// It is applied to everything that reaches logs via SafeError.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bcryptHashPattern.ReplaceAllString(msg, "$$2b$$****")

	return msg
}
