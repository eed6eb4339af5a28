package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Ordering translates the comma separated ordering parameter into an ORDER
// BY clause. allowed maps public field names to columns; a leading "-"
// sorts descending. Unknown fields are ignored, and fallback is used when
// nothing usable remains.
func Ordering(c *gin.Context, allowed map[string]string, fallback string) string {
	raw := c.Query("ordering")
	if raw == "" {
		return fallback
	}
	var parts []string
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		dir := "ASC"
		if strings.HasPrefix(f, "-") {
			dir = "DESC"
			f = f[1:]
		}
		col, ok := allowed[f]
		if !ok {
			continue
		}
		parts = append(parts, col+" "+dir)
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

// Like builds a case-insensitive substring pattern for LOWER(col) LIKE ?.
func Like(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

// BoolQuery reads a boolean filter. The second result is false when the
// parameter is missing or not a recognised boolean.
func BoolQuery(c *gin.Context, key string) (bool, bool) {
	switch strings.ToLower(c.Query(key)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

// IntQuery reads an integer filter. The second result is false when the
// parameter is missing or not an integer.
func IntQuery(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ValidID reports whether id is a UUID in the canonical 36-character form
// that ids are stored in. Lookups by anything else cannot match and are
// answered with 404 without touching the store.
func ValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
