package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/photoloop/api-go/config"
	"github.com/photoloop/api-go/routes"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	db := config.InitDB()
	storage := config.GetStorageConfig()

	r := gin.Default()
	r.Use(cors.Default())

	routes.SetupRoutes(r, db, storage)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.WithField("port", port).Info("Starting server")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Server exited")
	}
}
