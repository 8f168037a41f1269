package main

import "github.com/noovas/games-catalog-api/cmd"

// @title           Games Catalog API
// @version         1.0.0
// @description     Search and discovery API for a games catalog with cached, paginated search and typeahead suggestions
// @contact.name    API Support
// @contact.url     https://github.com/noovas/games-catalog-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
