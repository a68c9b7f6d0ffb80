package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"

	_ "github.com/jorge-ea-campos/aplicativo-requerimentosII/docs"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/handler"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/middleware"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/storage"
)

// @title           Sistema de Conferência de Requerimentos API
// @version         1.0
// @description     Backend for reconciling current-semester petitions against the consolidated historical record, recording reviewer decisions and exporting annotated reports.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("main(): no .env file found, relying on environment")
	}

	// sessions and decisions are discarded on restart on purpose
	storage.InitDB(":memory:")

	router := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	router.Use(cors.New(config))

	// brute-force protection on the shared password
	loginLimiter := limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(time.Second), 5), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts"})
	})
	router.POST("/login", loginLimiter, handler.Login)

	protected := router.Group("/api").Use(middleware.AuthMiddleware())
	{
		protected.POST("/sessions", handler.CreateSession)
		protected.GET("/sessions/:id", handler.GetSessionSummary)
		protected.DELETE("/sessions/:id", handler.DeleteSession)
		protected.GET("/sessions/:id/students", handler.ListStudents)
		protected.GET("/sessions/:id/students/:nusp", handler.GetStudent)
		protected.GET("/sessions/:id/decisions", handler.ListDecisions)
		protected.PUT("/sessions/:id/decisions/:key", handler.PutDecision)
		protected.GET("/sessions/:id/export", handler.ExportReport)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(router.Run(":" + port))
}
