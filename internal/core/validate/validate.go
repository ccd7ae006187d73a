// Package validate provides shared validation functions for user input.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hay-kot/criterio"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Title validates a prompt or todo title is non-empty after trimming.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// Slug validates a filename slug: lowercase alphanumerics separated by
// single hyphens.
func Slug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("slug must be lowercase alphanumerics separated by hyphens")
	}
	return nil
}

// TitleField returns a criterio field error for an invalid title.
func TitleField(field, title string) error {
	return criterio.Run(field, title, Title)
}

// SlugField returns a criterio field error for an invalid slug.
func SlugField(field, slug string) error {
	return criterio.Run(field, slug, Slug)
}
