package main

import (
	"context"
	"log"
	"os"

	"MediCareHub/configuration"
	"MediCareHub/jobs"
	"MediCareHub/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	if !isTest {
		if os.Getenv("JWT_SECRET") == "" {
			log.Fatal("JWT_SECRET is not set")
		}
		configuration.ConfigDB()
		configuration.InitRedis()

		if err := configuration.EnsureIndexes(context.Background()); err != nil {
			log.Println("Error creating indexes:", err)
		}

		jobs.StartDailyScheduler()
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := startServer(r, port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
