package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInput strips HTML from every top-level string field of a JSON
// body before it reaches the handler. Entities produced by the sanitizer are
// unescaped again so plain text like "Tom & Jerry" survives unchanged.
func SanitizeInput() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid body"})
			return
		}
		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "JSON parse error - " + err.Error()})
			return
		}

		for k, v := range body {
			if str, ok := v.(string); ok {
				body[k] = cleanText(policy, str)
			}
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

// cleanText strips markup from s. Escaped markup that turns back into tags
// once unescaped is stripped again.
func cleanText(policy *bluemonday.Policy, s string) string {
	out := html.UnescapeString(policy.Sanitize(s))
	if strings.ContainsAny(out, "<>") {
		out = html.UnescapeString(policy.Sanitize(out))
	}
	return out
}
