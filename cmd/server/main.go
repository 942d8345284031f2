// Command server runs the craft shop admin backend HTTP server.
//
// Exit codes: 0 = clean shutdown, 1 = startup or shutdown error.
package main

import (
	"log"

	"github.com/craftshop/admin-backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
