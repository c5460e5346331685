package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/praxislabs/praxis/cmd"
)

func main() {
	// Optional .env for local development; the environment wins.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
