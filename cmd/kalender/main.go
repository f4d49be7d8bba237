// Command kalender converts dates between the Gregorian and Javanese calendars.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/zapponejosh/kalender-jawa/internal/cli"
)

func main() {
	// DEFAULT_LANG and STEPPING may come from .env
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
