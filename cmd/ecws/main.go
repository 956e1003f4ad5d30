package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/chess10kp/ecws/internal/config"
	"github.com/chess10kp/ecws/internal/core"
	"github.com/chess10kp/ecws/internal/instance"
)

const envLogFile = "ECWS_LOG_FILE"

func main() {
	// Log to stderr unless a log file is requested
	if path := os.Getenv(envLogFile); path != "" {
		logFile, err := os.OpenFile(config.ExpandPath(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(logFile)
			defer logFile.Close()
		}
	}

	configPath := config.DefaultPath()
	if len(os.Args) > 1 {
		configPath = config.ExpandPath(os.Args[1])
	}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		fmt.Fprintf(os.Stderr, "No config found in %s\n", configPath)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Ensure single instance
	lock, err := instance.Acquire(instance.DefaultPath())
	if err != nil {
		log.Printf("Failed to ensure single instance: %v", err)
	} else {
		defer lock.Release()
	}

	// Create application
	app, err := core.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Run application
	if err := app.Run(); err != nil {
		log.Printf("Application error: %v", err)
		if lock != nil {
			lock.Release()
		}
		os.Exit(1)
	}
}
