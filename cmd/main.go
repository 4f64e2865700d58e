// cmd/main.go
package main

import (
	"go-ledger-api/app"
)

// @title           Go-Ledger API
// @version         1.0
// @description     Record-keeping API for accounts, transactions, and cards backed by a flat JSON document.

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
