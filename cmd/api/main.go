package main

import (
	_ "onecrew_paving/docs"
	"onecrew_paving/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Paving Estimate API
// @version         1.0
// @description     Cost/price estimator and customer/estimate storage for a paving contractor, backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
