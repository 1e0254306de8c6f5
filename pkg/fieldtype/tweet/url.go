package tweet

import "regexp"

// statusURLPattern matches https://twitter.com/<author>/status/<id> exactly.
// Query strings, fragments and extra path segments are rejected.
var statusURLPattern = regexp.MustCompile(`^https://twitter\.com/([A-Za-z0-9_.~-]+)/status/([0-9]+)$`)

// ParseStatusURL extracts the author handle and status id from a Twitter
// status URL.
func ParseStatusURL(s string) (author string, statusID string, ok bool) {
	matches := statusURLPattern.FindStringSubmatch(s)
	if matches == nil {
		return "", "", false
	}

	return matches[1], matches[2], true
}

func IsValidStatusURL(s string) bool {
	return statusURLPattern.MatchString(s)
}
