package server

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// staticFiles serves files under root. "/" maps to index.html and missing
// files get a plain-text 404.
func staticFiles(root string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if reqPath == "/" {
			reqPath = "/index.html"
		}

		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.String(http.StatusNotFound, "File not found: %s", reqPath)
			return
		}

		clean := path.Clean("/" + reqPath)
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(clean)))
		if err != nil {
			slog.Debug("Static file not found", "path", reqPath, "error", err)
			c.String(http.StatusNotFound, "File not found: %s", reqPath)
			return
		}

		c.Data(http.StatusOK, contentType(clean), content)
	}
}

func contentType(p string) string {
	switch {
	case strings.HasSuffix(p, ".html"):
		return "text/html"
	case strings.HasSuffix(p, ".css"):
		return "text/css"
	case strings.HasSuffix(p, ".js"):
		return "application/javascript"
	default:
		return "text/plain"
	}
}
