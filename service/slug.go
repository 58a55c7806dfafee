package service

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile("[^a-z0-9]+")

// Slugify lowercases the title, collapses every run of non-alphanumeric
// characters into a single hyphen, and trims hyphens at both ends. A title
// consisting only of symbols slugs to the empty string.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
