package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes an identifier for use as a lookup key: lower-cased, with
// runs of non-alphanumeric characters collapsed into a single hyphen.
// "Fusiliers (Forward Observer)" becomes "fusiliers-forward-observer".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
