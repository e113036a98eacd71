package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tradely/handlers"
)

// RegisterRoutes wires all endpoints for the quoting engine.
func RegisterRoutes(r *gin.Engine, quoteHandler *handlers.QuoteHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)

		api.POST("/quote", quoteHandler.RequestQuote)
		api.GET("/quote/:reference", quoteHandler.GetQuote)
		api.POST("/quote/:reference/deposit-intent", quoteHandler.CreateDepositIntent)
	}
}
