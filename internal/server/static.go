package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// mountStatic serves the exported web build of the mobile client from the
// configured directory. The export is a single-page app, so unknown
// non-API paths fall back to index.html.
func (s *Server) mountStatic() {
	if s.staticDir == "" {
		s.logger.Warn("static directory not configured; API only mode")
		return
	}

	info, err := os.Stat(s.staticDir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("static directory missing", "path", s.staticDir, "error", err)
		return
	}

	indexPath := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		s.logger.Warn("index.html not found", "path", indexPath, "error", err)
	} else {
		s.engine.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})
		s.engine.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
				return
			}
			c.File(indexPath)
		})
	}

	// Expo web exports hashed bundles under _expo and images under assets.
	for _, dir := range []string{"_expo", "assets"} {
		full := filepath.Join(s.staticDir, dir)
		if _, err := os.Stat(full); err == nil {
			s.engine.StaticFS("/"+dir, gin.Dir(full, true))
		}
	}

	favicon := filepath.Join(s.staticDir, "favicon.ico")
	if _, err := os.Stat(favicon); err == nil {
		s.engine.StaticFile("/favicon.ico", favicon)
	}
}
