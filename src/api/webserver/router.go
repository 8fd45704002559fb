package webserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	aicore "github.com/verilens/factcheck-api/src/ai/core"
	"github.com/verilens/factcheck-api/src/api/config"
	"github.com/verilens/factcheck-api/src/api/data"
)

// New assembles the gin router. db and rdb may be nil; the matching
// features (history, verdict cache) are simply absent then.
func New(cfg config.Config, db *gorm.DB, rdb *redis.Client, ai aicore.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	checks := NewChecks(cfg, ai, data.NewVerdictCache(rdb, cfg.CacheTTL), data.NewCheckStore(db))
	limiter := NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true, "provider": cfg.Provider, "env": cfg.Env})
		})
		api.POST("/check-fact", RateLimitMiddleware(limiter), checks.Check)

		if db != nil && cfg.JWTSecret != "" {
			admin := api.Group("/admin")
			admin.Use(JWTMiddleware([]byte(cfg.JWTSecret)))
			admin.GET("/checks", NewAdmin(data.NewCheckStore(db)).RecentChecks)
		}
	}

	if cfg.StaticDir != "" {
		r.Static("/app", cfg.StaticDir)
		r.StaticFile("/", cfg.StaticDir+"/index.html")
	}

	return r
}
