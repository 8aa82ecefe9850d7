package main

import (
	"context"
	"log"
	"os"

	"github.com/centrifugal/centrifuge"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/jimmyqrg/parkoreen-sub001/internal/config"
	"github.com/jimmyqrg/parkoreen-sub001/internal/coordinator"
	"github.com/jimmyqrg/parkoreen-sub001/internal/directory"
	"github.com/jimmyqrg/parkoreen-sub001/internal/registry"
	"github.com/jimmyqrg/parkoreen-sub001/internal/repository"
	"github.com/jimmyqrg/parkoreen-sub001/internal/repository/memory"
	"github.com/jimmyqrg/parkoreen-sub001/internal/repository/postgres"
	redisstore "github.com/jimmyqrg/parkoreen-sub001/internal/repository/redis"
)

func main() {
	cfg := loadConfig()

	store := buildRoomStore(cfg)
	dir := buildDirectory(cfg)

	coord := coordinator.New(dir, registry.New(store), coordinator.Options{
		StoreTimeout:      cfg.Coordinator.StoreTimeout.Duration,
		ChatLimit:         cfg.Coordinator.ChatLimit,
		DefaultMaxPlayers: cfg.Coordinator.DefaultMaxPlayers,
	})
	go coord.Run()

	router := gin.Default()
	router.SetTrustedProxies(nil)

	node, err := centrifuge.New(centrifugeMainConfig())
	if err != nil {
		log.Fatal(err)
	}

	node.OnConnect(onConnect(coord))

	if err := node.Run(); err != nil {
		log.Fatal(err)
	}

	wsHandler := centrifuge.NewWebsocketHandler(node, wsMainConfig())

	router.GET("/", root)
	router.GET(socketPath, gin.WrapH(session(wsHandler)))

	router.Run(cfg.Coordinator.ListenAddr)
}

func loadConfig() config.Config {
	settings := ""
	if _, err := os.Stat(settingsPath); err == nil {
		settings = settingsPath
	}
	return config.LoadConfig(settings)
}

func buildRoomStore(cfg config.Config) repository.RoomStore {
	switch cfg.Coordinator.RoomStore {
	case "postgres":
		if err := repository.InitDB(context.Background(), cfg); err != nil {
			log.Fatal(err)
		}
		if err := repository.Migrate(cfg, migrationsDir); err != nil {
			log.Fatal(err)
		}
		return postgres.NewPostgresRoomStore(repository.GetDB())

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("redis unreachable: ", err)
		}
		return redisstore.NewRedisRoomStore(client, cfg.Coordinator.RoomTTL.Duration)

	case "memory":
		return memory.NewMemoryRoomStore()

	default:
		log.Fatalf("unknown room store backend %q", cfg.Coordinator.RoomStore)
		return nil
	}
}

func buildDirectory(cfg config.Config) directory.Directory {
	secret := []byte(cfg.JWTSecret)

	// Without the account database, fall back to identity carried in
	// the token claims themselves.
	if cfg.DB.Host == "" {
		return directory.NewTokenDirectory(secret)
	}

	if repository.GetDB() == nil {
		if err := repository.InitDB(context.Background(), cfg); err != nil {
			log.Fatal(err)
		}
	}
	return directory.New(secret, postgres.NewPostgresUserRepository(repository.GetDB()))
}
