package ingest

import (
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

const defaultPhoneRegion = "US"

// normalizePhone formats a phone number for display. Unparseable or invalid
// numbers are kept verbatim; dirty input degrades, it does not drop.
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.NATIONAL)
}

// sanitizeWebsite normalizes a website URL, defaulting the scheme to https
// and verifying the host is a resolvable IDNA hostname. Returns the cleaned
// URL and whether the input was usable; unusable input clears the field.
func sanitizeWebsite(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", true
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if _, err := idna.Lookup.ToASCII(u.Hostname()); err != nil {
		return "", false
	}
	return u.String(), true
}
