package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/visyura/notna-archives.art/internal/config"
	"github.com/visyura/notna-archives.art/internal/handler"
	"github.com/visyura/notna-archives.art/internal/relay"
	"github.com/visyura/notna-archives.art/internal/stars"
)

// Setup wires the gin engine: the stars API, the websocket relay, and
// static serving of the site root for everything else.
func Setup(cfg config.AppConfig, hub *relay.Hub) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	starsHandler := handler.NewStarsHandler(stars.NewStore(cfg.StarsFile))

	api := r.Group("/api")
	{
		api.GET("/load-stars", starsHandler.LoadStars)
		api.POST("/save-star", starsHandler.SaveStar)
	}

	r.GET("/ws", hub.Serve)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Everything else is the static site.
	r.NoRoute(serveSite(cfg.SiteRoot))

	return r
}

// serveSite serves files relative to root, with index.html at the top and
// path traversal cut off by Clean.
func serveSite(root string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusMethodNotAllowed)
			return
		}

		rel := strings.TrimPrefix(c.Request.URL.Path, "/")
		if rel == "" {
			rel = "index.html"
		}
		rel = filepath.Clean(filepath.FromSlash(rel))
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			c.Status(http.StatusBadRequest)
			return
		}

		path := filepath.Join(root, rel)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(path)
	}
}
