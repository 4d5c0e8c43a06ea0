package main

import (
	_ "payment-gateway-service/docs"
	"payment-gateway-service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Gateway API
// @version         1.0
// @description     Stateless adapter boundary between the legacy platform and third-party payment processors.

// @contact.name   Platform Team

// @host localhost:8082

// @BasePath  /

func main() {
	routes.Run()
}
