package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	a := NewApp(os.Stdout, os.Stderr)
	if err := SetupCommands(a).Execute(); err != nil {
		os.Exit(1)
	}
}
