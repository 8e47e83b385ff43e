package config

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ServerAddr   string
	DatabasePath string

	AuthSecret    string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	ReplySubject string
)

// Load reads config.yaml and applies ELC_* environment overrides.
// Secrets (auth.secret, auth.admin_password, smtp.password) should come
// from the environment in any real deployment; the yaml file only ships
// development defaults.
func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("cmd/config/")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("elc")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("database.path", "ministry.db")
	viper.SetDefault("auth.token_ttl_minutes", 60)
	viper.SetDefault("auth.admin_username", "admin")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("mail.reply_subject", "Reply from End Time Ministry")

	if err := viper.ReadInConfig(); err != nil {
		logrus.WithError(err).Warn("no config file found, using defaults and environment")
	}

	ServerAddr = viper.GetString("server.addr")
	DatabasePath = viper.GetString("database.path")

	AuthSecret = viper.GetString("auth.secret")
	TokenTTL = time.Duration(viper.GetInt("auth.token_ttl_minutes")) * time.Minute
	AdminUsername = viper.GetString("auth.admin_username")
	AdminPassword = viper.GetString("auth.admin_password")

	SMTPHost = viper.GetString("smtp.host")
	SMTPPort = viper.GetInt("smtp.port")
	SMTPUsername = viper.GetString("smtp.username")
	SMTPPassword = viper.GetString("smtp.password")
	SMTPFrom = viper.GetString("smtp.from")

	ReplySubject = viper.GetString("mail.reply_subject")

	if AuthSecret == "" {
		logrus.Fatal("auth.secret (ELC_AUTH_SECRET) must be set")
	}
	if AdminPassword == "" {
		logrus.Fatal("auth.admin_password (ELC_AUTH_ADMIN_PASSWORD) must be set")
	}
}
