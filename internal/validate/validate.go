// Package validate holds the shared charset rules for usernames, tags and
// search keywords.
package validate

import (
	"regexp"

	"github.com/jellydator/validation"
)

// Usernames, tags and search keywords all share one charset: letters,
// digits, underscore or hyphen, non-empty.
var tokenPattern = regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)

// TokenRules are the validation rules for a single username/tag/keyword,
// usable in validation.ValidateStruct field lists.
var TokenRules = []validation.Rule{
	validation.Required,
	validation.Match(tokenPattern),
}

// Username reports whether the username satisfies the charset rule.
func Username(username string) bool {
	return validation.Validate(username, TokenRules...) == nil
}

// Tag reports whether the tag satisfies the charset rule. The same rule
// applies to search keywords.
func Tag(tag string) bool {
	return validation.Validate(tag, TokenRules...) == nil
}

// Tags reports whether every tag in the list is valid.
func Tags(tags []string) bool {
	for _, t := range tags {
		if !Tag(t) {
			return false
		}
	}
	return true
}
