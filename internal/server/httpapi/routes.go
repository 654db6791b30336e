package httpapi

import (
	"net/http"
	"slices"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with middleware and every route registered.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()

	r.Use(s.recovery(), s.requestID(), s.accessLog())
	r.Use(cors.New(corsConfig(s.corsOrigins)))

	r.GET("/", s.hello)
	r.GET("/healthz", s.health)

	r.POST("/user", s.signup)
	r.POST("/user/user", s.signup)

	r.PUT("/publish/:id", s.publishPost)

	r.GET("/post/:id", s.getPost)
	r.POST("/post", s.createPost)
	r.PATCH("/post/:id", s.updatePost)
	r.DELETE("/post/:id", s.deletePost)

	r.GET("/posts", s.listPosts)
	r.GET("/feed", s.feed)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}

// corsConfig allows every origin when none are listed or "*" is among them.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", common.RequestIDHeaderName},
		ExposeHeaders: []string{"Content-Length", "Content-Type", common.RequestIDHeaderName},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}
