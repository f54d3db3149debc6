package main

import (
	"log"
	"os"
	"time"

	"design-request-app/config"
	"design-request-app/database"
	requestsapi "design-request-app/internal/api/requests"
	routes "design-request-app/internal/app/http"
	"design-request-app/internal/infra/s3"
	"design-request-app/internal/infra/trello"
	"design-request-app/internal/repository"
	"design-request-app/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	blobs, err := s3.NewClient(config.S3_BUCKET, config.S3_REGION, config.S3_PUBLIC_BASE_URL)
	if err != nil {
		log.Fatal("❌ Failed to create S3 client:", err)
	}

	tracker := trello.NewClient(trello.Config{
		APIKey: config.TRELLO_API_KEY,
		Token:  config.TRELLO_TOKEN,
		ListID: config.TRELLO_LIST_ID,
	})
	if !tracker.Configured() {
		log.Println("⚠️ Trello not configured; requests will be stored without a mirrored card")
	}

	store := repository.NewGormRequestStore(database.DB)
	svc := service.New(store, blobs, tracker)
	handler := requestsapi.NewHandler(svc)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, handler)

	r.Run(":" + config.PORT)
}
