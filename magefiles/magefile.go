//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the API server and the CLI into ./bin.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building binaries...")
	if err := sh.Run("go", "build", "-o", "bin/kalender-api", "./cmd/api"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", "bin/kalender", "./cmd/kalender")
}

// Run builds then starts the API server.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server...")
	return sh.RunV("./bin/kalender-api")
}

// Dev starts the API server via go run with debug logging.
func Dev() error {
	fmt.Println(">> Dev mode: go run ./cmd/api ...")
	cmd := exec.Command("go", "run", "./cmd/api")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "ENV=development", "LOG_LEVEL=debug")
	return cmd.Run()
}

// Cli runs the kalender CLI with the arguments in KALENDER_ARGS.
func Cli() error {
	args := append([]string{"run", "./cmd/kalender"}, strings.Fields(os.Getenv("KALENDER_ARGS"))...)
	return sh.RunV("go", args...)
}

// Smoke runs the API smoke client against a running server.
func Smoke() error {
	url := os.Getenv("API_URL")
	if url == "" {
		url = "http://localhost:8080"
	}
	return sh.RunV("go", "run", "./cmd/apitest", "-url", url)
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests with the race detector.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Cover writes a coverage profile and prints the per-function summary.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts and the local SQLite database.
func Clean() error {
	fmt.Println(">> Cleaning...")
	os.Remove("coverage.out")
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "data/kalender.db"
	}
	os.Remove(path)
	return os.RemoveAll("bin")
}

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
