package main

import (
	_ "github.com/JoFly70/lumiere-student-portal-v2-sub001/docs"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Degree Flight Deck API
// @version         1.0
// @description     Degree completion and financial projection engine (flight deck, plan estimates, upfront payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
