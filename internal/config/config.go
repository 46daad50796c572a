// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		// Entry caps for the dashboard's upcoming-goal and recent-milestone lists.
		UpcomingGoalLimit    int `mapstructure:"upcoming_goal_limit"`
		RecentMilestoneLimit int `mapstructure:"recent_milestone_limit"`
	} `mapstructure:"app"`
	JWT struct {
		SecretKey   string `mapstructure:"secret_key"`
		ExpiryHours int    `mapstructure:"expiry_hours"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Mailer struct {
		// "log" or "ses"
		Provider string `mapstructure:"provider"`
		From     string `mapstructure:"from"`
	} `mapstructure:"mailer"`
	SES struct {
		Region          string `mapstructure:"region"`
		AuthType        string `mapstructure:"auth_type"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"ses"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = ":8080"
	}
	if Cfg.App.UpcomingGoalLimit <= 0 {
		Cfg.App.UpcomingGoalLimit = 5
	}
	if Cfg.App.RecentMilestoneLimit <= 0 {
		Cfg.App.RecentMilestoneLimit = 5
	}
	if Cfg.JWT.ExpiryHours <= 0 {
		Cfg.JWT.ExpiryHours = 24
	}
	if Cfg.Mailer.Provider == "" {
		Cfg.Mailer.Provider = "log"
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	return nil
}
