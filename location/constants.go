package location

import "regexp"

// ZipcodeRE matches 5 digit or 5+4 digit zip codes, e.g. 94612 or 94612-1234.
var ZipcodeRE = regexp.MustCompile(`^[0-9]{5}(?:-[0-9]{4})?$`)

// USPhoneRE matches US phone numbers. It is looser than strict NANP formatting
// so normalizers don't need to encode numbers exactly,
// e.g. (444) 444-4444 or +1 (444) 444-4444 ext. 12.
var USPhoneRE = regexp.MustCompile(`^(?:(?:\+?1\s*(?:[.-]\s*)?)?(?:\(([0-9]{3})\)|([0-9]{3}))\s*(?:[.-]\s*)?)?([0-9]{3})\s*(?:[.-]\s*)?([0-9]{4})(?:\s*(?:\#|x\.?|ext\.?|extension)\s*(\d+))?$`)

// EnumValueRE matches lowercase alphanumerics and underscores, e.g. google_places.
var EnumValueRE = regexp.MustCompile(`^[a-z0-9_]+$`)

// LocationIDRE matches a source name and a source id joined by a single colon,
// e.g. az_arcgis:hsdg46sj.
var LocationIDRE = regexp.MustCompile(`^[a-z0-9_]+\:[a-zA-Z0-9_-]+$`)

// SourceIDRE matches anything without whitespace or a colon. Sources must
// replace those characters (with a dash, for instance).
var SourceIDRE = regexp.MustCompile(`^[^\s\:]+$`)

const (
	// NoteMaxLength bounds long free-text fields.
	NoteMaxLength = 2046
	// ValueMaxLength bounds ordinary string values.
	ValueMaxLength = 256
	// EnumMaxLength bounds short enum identifiers.
	EnumMaxLength = 64
	// IDMaxLength bounds identifier strings.
	IDMaxLength = 128
)
