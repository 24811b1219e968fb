package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	Port       string
	SessionKey string
	AppAuthKey string
	AppEncKey  string
	AppURL     string
	AppEnv     string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	env := ENV{
		Port:       os.Getenv("APP_PORT"),
		SessionKey: os.Getenv("SESSION_KEY"),
		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),
		AppURL:     os.Getenv("APP_URL"),
		AppEnv:     os.Getenv("APP_ENV"),
	}
	if env.Port == "" {
		env.Port = ":8080"
	}
	return env
}
