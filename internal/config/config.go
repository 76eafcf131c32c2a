package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	RedisAddr string
	JWTSecret string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string

	CartFile string
}

// Load reads the configuration from the environment. MONGO_URI and
// JWT_SECRET are required; everything else has a local-dev default.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGO_DB", "hidestyle")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CART_FILE", "cart.json")
	v.SetDefault("CLOUDINARY_UPLOAD_PRESET", "hidestyle_preset")

	cfg := &Config{
		Port:      v.GetString("PORT"),
		MongoURI:  v.GetString("MONGO_URI"),
		MongoDB:   v.GetString("MONGO_DB"),
		RedisAddr: v.GetString("REDIS_ADDR"),
		JWTSecret: v.GetString("JWT_SECRET"),

		CloudinaryCloudName:    v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    v.GetString("CLOUDINARY_API_SECRET"),
		CloudinaryUploadPreset: v.GetString("CLOUDINARY_UPLOAD_PRESET"),

		CartFile: v.GetString("CART_FILE"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("environment variable MONGO_URI not found")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET not found")
	}

	return cfg, nil
}
