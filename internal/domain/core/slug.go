package core

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe slug from free text, or fallback when nothing
// ASCII survives (e.g. a title written only in Chinese).
// Example: "Spring Peony Study" -> "spring-peony-study"
func MakeSlug(text, fallback string) string {
	base := strings.ToLower(strings.TrimSpace(text))
	base = strings.ReplaceAll(base, " ", "-")
	base = strings.ReplaceAll(base, "_", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		return fallback
	}
	if len(base) > 180 {
		base = strings.TrimRight(base[:180], "-")
	}
	return base
}

// UniqueSlug returns base, or base with a numeric suffix, such that no row of
// model other than excludeID uses it in the slug column.
func UniqueSlug(db *gorm.DB, model any, base, excludeID string) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		var n int64
		q := db.Session(&gorm.Session{NewDB: true}).Model(model).Where("slug = ?", candidate)
		if excludeID != "" {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&n).Error; err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if n == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
