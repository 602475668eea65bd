package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/parisbureaux/bureaux-api/cmd/app"
)

// @contact.name   Bureaux de Paris
// @contact.email  dev@bureauxparis.fr
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
