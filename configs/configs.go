package configs

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		config = &Config{
			Viper: initializeViper(),
		}
	})
	return config
}

func initializeViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using defaults and environment:", err)
	}

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "property_hub")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.notification_channel", "notifications")

	v.SetDefault("jwt.expiration_time", 86400)

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.external_endpoint", "localhost:9000")
	v.SetDefault("minio.access_key_id", "minioadmin")
	v.SetDefault("minio.secret_access_key", "minioadmin")
	v.SetDefault("minio.use_ssl", false)
}
