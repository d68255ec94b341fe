package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/color-blob-mcp/internal/logger"
	"github.com/ironsheep/color-blob-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-blob-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-blob-mcp - MCP server for color-blob detection")
			fmt.Println()
			fmt.Println("Usage: color-blob-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug|info|warn|error    Log level (default info)\n", logger.LevelEnv)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Logs go to stderr; stdout is for MCP protocol
	log := logger.NewZerolog(os.Stderr, logger.LevelFromEnv())
	log.Debug("main", "starting", map[string]interface{}{
		"version":    Version,
		"build_time": BuildTime,
		"commit":     GitCommit,
	})

	if Version != "dev" {
		server.Version = Version
	}

	srv := server.New(log)
	if err := srv.Run(); err != nil {
		log.Error("main", fmt.Errorf("server error: %w", err), nil)
		os.Exit(1)
	}
}
