package main

import (
	"log"
	"net/http"

	"github.com/centrifugal/centrifuge"
)

const socketPath = "/join"
const settingsPath = "coordinator.toml"
const migrationsDir = "migrations"

func checkOrigin(r *http.Request) bool {
	// originHeader := r.Header.Get("Origin")
	// if originHeader == "http://localhost:8000" {
	// 	return true }

	return true
}

func wsMainConfig() centrifuge.WebsocketConfig {
	return centrifuge.WebsocketConfig{
		CheckOrigin: checkOrigin,
	}
}

func centrifugeMainConfig() centrifuge.Config {
	return centrifuge.Config{
		LogLevel: centrifuge.LogLevelError,
		LogHandler: func(e centrifuge.LogEntry) {
			log.Printf("%v %v", e.Message, e.Fields)
		},
	}
}
