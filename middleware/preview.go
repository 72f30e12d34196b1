package middleware

import (
	"pagecraft/utils"

	"github.com/gin-gonic/gin"
)

// PreviewMiddleware resolves whether the request may see draft content.
// preview=true only takes effect with a valid preview token for the
// requested target, or an authenticated editor session.
func PreviewMiddleware(targetParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		preview := false
		if c.Query("preview") == "true" {
			target := c.Param(targetParam)
			if token := c.Query("previewToken"); token != "" {
				preview = utils.ValidatePreviewToken(token, target)
			}
			if !preview {
				if _, ok := c.Get("editorID"); ok {
					preview = true
				}
			}
		}
		c.Set("preview", preview)
		c.Next()
	}
}

// IsPreview reads the resolved preview flag off the request context.
func IsPreview(c *gin.Context) bool {
	if v, ok := c.Get("preview"); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
