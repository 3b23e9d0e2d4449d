package intake

import (
	"regexp"
	"strings"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether v looks like an email address. This is a
// shape check only, not a deliverability check.
func IsValidEmail(v string) bool {
	return emailRx.MatchString(v)
}

// IsFullSSN reports whether v contains exactly nine digits once separators
// and other non-digit characters are stripped, e.g. "123-45-6789".
func IsFullSSN(v string) bool {
	digits := 0
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == 9
}

// notBlank reports whether v contains any non-whitespace characters.
func notBlank(v string) bool {
	return strings.TrimSpace(v) != ""
}

// IdentityComplete reports whether the Contact & Identity fields are filled:
// legal name, phone, valid email, full SSN, address line 1, city, state, zip.
// The required ID upload is checked separately, against the upload adapter.
func (r Record) IdentityComplete() bool {
	if !notBlank(r.LegalName) || !notBlank(r.Phone) {
		return false
	}
	if !notBlank(r.Email) || !IsValidEmail(r.Email) {
		return false
	}
	if !IsFullSSN(r.SSN) {
		return false
	}
	return notBlank(r.Address1) && notBlank(r.City) && notBlank(r.State) && notBlank(r.Zip)
}

// ConsentComplete reports whether both acknowledgements are given and the
// signature name and date are present.
func (r Record) ConsentComplete() bool {
	if !r.Consent.AgreeToESign || !r.Consent.AgreeToDisclosures {
		return false
	}
	return notBlank(r.Consent.SignatureName) && notBlank(r.Consent.SignatureDate)
}
