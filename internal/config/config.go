package config

import (
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Addr     string
	Password string
}

// Coordinator holds the tunables read from the TOML settings file.
type Coordinator struct {
	// RoomStore selects the room record backend: "postgres", "redis"
	// or "memory".
	RoomStore string `toml:"room_store"`
	// StoreTimeout bounds every call against the room record store and
	// the user directory.
	StoreTimeout duration `toml:"store_timeout"`
	// RoomTTL bounds leaked records in the redis backend. Zero means
	// no expiry.
	RoomTTL duration `toml:"room_ttl"`
	// ChatLimit is the chat truncation length in UTF-16 code units.
	ChatLimit int `toml:"chat_limit"`
	// DefaultMaxPlayers applies when create_room sends no capacity.
	DefaultMaxPlayers int `toml:"default_max_players"`
	ListenAddr        string `toml:"listen_addr"`
}

type Config struct {
	DB          DBConfig
	Redis       RedisConfig
	JWTSecret   string
	Coordinator Coordinator
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func defaultCoordinator() Coordinator {
	return Coordinator{
		RoomStore:         "memory",
		StoreTimeout:      duration{5 * time.Second},
		RoomTTL:           duration{12 * time.Hour},
		ChatLimit:         200,
		DefaultMaxPlayers: 8,
		ListenAddr:        "0.0.0.0:8080",
	}
}

func LoadConfig(settingsPath string) Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Print("No .env file found, using environment as is")
	}

	coordinator := defaultCoordinator()
	if settingsPath != "" {
		if _, err := toml.DecodeFile(settingsPath, &coordinator); err != nil {
			log.Fatal("Error loading settings file ", err)
		}
	}

	return Config{
		DB: DBConfig{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Name:     os.Getenv("POSTGRES_DB"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Coordinator: coordinator,
	}
}
