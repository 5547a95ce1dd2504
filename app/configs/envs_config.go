package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBDriver      string
	DatabaseURL   string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	Port          string
	WebPort       string
	APIBaseURL    string
	AllowedOrigin string
	AppAuthKey    string
	AppEncKey     string
	APP_ENV       string
	LogLevel      string
	LogFormat     string
	TemplatesDir  string
}

// LoadEnv reads the process environment, first merging in the given dotenv
// files (".env" when none are given). A missing file is not an error.
func LoadEnv(files ...string) ENV {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			log.Printf("Warning: No %s file found", f)
		}
	}

	return ENV{
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "catalog"),
		DBPort:        os.Getenv("DB_PORT"),
		Port:          getEnv("APP_PORT", ":8080"),
		WebPort:       getEnv("WEB_PORT", ":3000"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		AppAuthKey:    os.Getenv("APP_AUTH_KEY"),
		AppEncKey:     os.Getenv("APP_ENC_KEY"),
		APP_ENV:       getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		TemplatesDir:  getEnv("TEMPLATES_DIR", "templates"),
	}
}

func (e ENV) IsProduction() bool {
	return e.APP_ENV == "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
