package webserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/veriscan/veriscan/src/api/config"
	"github.com/veriscan/veriscan/src/content"
	"github.com/veriscan/veriscan/src/forensics"
	"github.com/veriscan/veriscan/src/verdict"
)

// Services bundles the collaborators the handlers need.
type Services struct {
	DB       *gorm.DB
	RDB      *redis.Client
	News     *verdict.Engine
	Image    *forensics.Engine
	Resolver *content.Resolver
}

func New(cfg config.Config, svc Services) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://veriscan.app"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		body := gin.H{"status": "healthy", "timestamp": time.Now().Format(time.RFC3339)}
		if svc.RDB != nil {
			if err := svc.RDB.Ping(c.Request.Context()).Err(); err != nil {
				body["cache"] = "unavailable"
			} else {
				body["cache"] = "ok"
			}
		}
		c.JSON(http.StatusOK, body)
	})

	authH := NewAuth(svc.DB, []byte(cfg.JWTSecret))
	newsH := NewNews(svc.DB, svc.News, svc.Resolver)
	imageH := NewImage(svc.DB, svc.Image, cfg.MinImageBytes, cfg.MaxImageBytes)
	histH := NewHistory(svc.DB)
	limiter := NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/signup", authH.Signup)
		v1.POST("/auth/login", authH.Login)

		secured := v1.Use(JWTMiddleware([]byte(cfg.JWTSecret)), RateLimitMiddleware(limiter))
		secured.POST("/news/check", newsH.Check)
		secured.POST("/image/check", imageH.Check)
		secured.GET("/scans", histH.List)
	}

	return r
}
