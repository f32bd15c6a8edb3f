package service

import (
	"strings"
	"unicode"
)

const EmailDomain = "wps-allianz.de"

// DeriveEmail builds the deterministic address for a user. Internal users get
// {first}.{last}@domain, external users external_{last}.{first}@domain.
func DeriveEmail(firstname, lastname string, isExternal bool) string {
	first := normalizeNamePart(firstname)
	last := normalizeNamePart(lastname)

	if isExternal {
		return "external_" + last + "." + first + "@" + EmailDomain
	}
	return first + "." + last + "@" + EmailDomain
}

func normalizeNamePart(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}
