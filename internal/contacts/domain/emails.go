package domain

import (
	"regexp"
	"sort"
	"strings"
)

// excludedEmailField holds quoted message bodies whose addresses belong to
// other people; scanning it would pollute the candidate set.
const excludedEmailField = "last_received_message_text"

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)

// EndsInLetter reports whether the token's final byte is an ASCII letter.
// Source exports frequently carry trailing punctuation artifacts; an address
// ending in anything else is not trusted.
func EndsInLetter(token string) bool {
	if token == "" {
		return false
	}
	c := token[len(token)-1]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// NormalizeEmail lowercases, trims, and strips trailing dots from an address,
// matching the form the directory indexes.
func NormalizeEmail(email string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(email)), ".")
}

// ExtractEmails scans every string field of the record except the excluded
// message-text field and returns the distinct email-like tokens that end in a
// letter, sorted ascending.
func ExtractEmails(record SourceRecord) []string {
	seen := make(map[string]struct{})
	for _, field := range record.Fields() {
		if field == excludedEmailField {
			continue
		}
		value := record.Get(field)
		if value == "" {
			continue
		}
		for _, match := range emailPattern.FindAllString(value, -1) {
			if EndsInLetter(match) {
				seen[match] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for email := range seen {
		out = append(out, email)
	}
	sort.Strings(out)
	return out
}

// MergeEmailValue unions the comma-separated emails already in an update plan
// with the addresses discovered during resolution, strips trailing dots,
// drops tokens not ending in a letter, de-duplicates case-insensitively, and
// returns them sorted and comma-joined.
func MergeEmailValue(planValue string, discovered []string) string {
	candidates := make([]string, 0, len(discovered)+4)
	for _, token := range strings.Split(planValue, ",") {
		candidates = append(candidates, token)
	}
	candidates = append(candidates, discovered...)

	byKey := make(map[string]string)
	for _, raw := range candidates {
		token := strings.TrimRight(strings.TrimSpace(raw), ".")
		if token == "" || !EndsInLetter(token) {
			continue
		}
		key := strings.ToLower(token)
		if _, ok := byKey[key]; !ok {
			byKey[key] = token
		}
	}

	kept := make([]string, 0, len(byKey))
	for _, token := range byKey {
		kept = append(kept, token)
	}
	sort.Strings(kept)
	return strings.Join(kept, ",")
}
