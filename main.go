package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/odolbodol/adboard/cmd/app"
)

// @title           Odol-Bodol Ad Board API
// @description     Classifieds board for exchanging or selling items.
//
// @contact.name   API Support
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
