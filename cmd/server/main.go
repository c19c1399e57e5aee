// Command server runs the hostel kitchen API together with the scheduled
// consumption and low-stock jobs.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/hostel-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
