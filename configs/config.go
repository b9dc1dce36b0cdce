package configs

import "os"

// Pagination bounds for the public feed.
const (
	DefaultLimitPosts = 10
	MaxLimitPosts     = 50
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	UploadDir string
}

func Load() Config {
	return Config{
		Port:      getenv("PORT", "5000"),
		MongoURI:  getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getenv("DB_NAME", "mini_social"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		UploadDir: getenv("UPLOAD_DIR", "./uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
