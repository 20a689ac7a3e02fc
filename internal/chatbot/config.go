package chatbot

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const DefaultEnvFile = "config.env"

type Config struct {
	BotName        string
	WelcomeMessage string
	Addr           string
}

// LoadConfig reads envFile (when present) without overriding variables already set,
// then resolves each setting with its fallback.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}
	return Config{
		BotName:        getEnv("BOT_NAME", "Chatbot"),
		WelcomeMessage: getEnv("WELCOME_MESSAGE", "Hello!"),
		Addr:           getEnv("CHATBOT_ADDR", ":8000"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
