// Package match provides the pure pattern validators used by the contact
// book: email extraction and phone number validation.
package match

import "regexp"

// emailPattern matches one email-shaped substring: a local part of letters,
// digits, underscore, dot, plus, or hyphen, then "@", then a domain with at
// least one dot.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)

// phonePattern accepts (DDD) DDD-DDDD, (DDD)DDD-DDDD, DDD-DDD-DDDD, and the
// bare DDD-DDDD form without an area code. The match covers the whole string;
// trailing characters after a valid number are rejected.
var phonePattern = regexp.MustCompile(`^((\(\d{3}\)\s?)|(\d{3}-))?\d{3}-\d{4}$`)

// ExtractEmails returns every non-overlapping maximal email-shaped substring
// of text, in order of appearance. Returns nil when there is no match.
func ExtractEmails(text string) []string {
	return emailPattern.FindAllString(text, -1)
}

// ValidatePhone reports whether s is a well-formed phone number.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(s)
}
