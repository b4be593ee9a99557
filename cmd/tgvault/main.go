package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jinzhu/copier"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/tgvault/pkg/auth"
	"github.com/tendant/tgvault/pkg/notification"
	"github.com/tendant/tgvault/pkg/telegram"
	"github.com/tendant/tgvault/pkg/users"
	"github.com/tendant/tgvault/pkg/wshub"
)

type VaultDbConfig struct {
	Host     string `env:"TGVAULT_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"TGVAULT_PG_PORT" env-default:"5432"`
	Database string `env:"TGVAULT_PG_DATABASE" env-default:"tgvault_db"`
	User     string `env:"TGVAULT_PG_USER" env-default:"tgvault"`
	Password string `env:"TGVAULT_PG_PASSWORD" env-default:"pwd"`
}

type JwtConfig struct {
	JwtSecret string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
	Issuer    string `env:"JWT_ISSUER" env-default:"tgvault"`
	Audience  string `env:"JWT_AUDIENCE" env-default:"tgvault"`
}

type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `env:"ADMIN_PASSWORD" env-default:"Admin123!"`
}

type TelegramConfig struct {
	APIID      int    `env:"TELEGRAM_API_ID" env-default:"0"`
	APIHash    string `env:"TELEGRAM_API_HASH" env-default:""`
	SessionDir string `env:"TELEGRAM_SESSION_DIR" env-default:"sessions"`
}

type EmailConfig struct {
	Host     string `env:"EMAIL_HOST" env-default:"localhost"`
	Port     int    `env:"EMAIL_PORT" env-default:"1025"`
	TLS      bool   `env:"EMAIL_TLS" env-default:"false"`
	Username string `env:"EMAIL_USERNAME" env-default:""`
	Password string `env:"EMAIL_PASSWORD" env-default:""`
	From     string `env:"EMAIL_FROM" env-default:"noreply@example.com"`
	To       string `env:"EMAIL_TO" env-default:""`
}

type Config struct {
	VaultDbConfig  VaultDbConfig
	AppConfig      app.AppConfig
	JwtConfig      JwtConfig
	AdminConfig    AdminConfig
	TelegramConfig TelegramConfig
	EmailConfig    EmailConfig
}

func main() {

	config := Config{}
	cleanenv.ReadEnv(&config)

	server := app.DefaultApp()

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	var dbConfig dbutils.DbConfig
	copier.Copy(&dbConfig, &config.VaultDbConfig)
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(-1)
	}

	userRepository := users.NewPostgresUserRepository(pool)
	userService := users.NewUserService(userRepository,
		users.WithAdminCredentials(config.AdminConfig.Username, config.AdminConfig.Password),
	)

	jwtService := auth.NewJwtService(
		config.JwtConfig.JwtSecret,
		auth.WithIssuer(config.JwtConfig.Issuer),
		auth.WithAudience(config.JwtConfig.Audience),
	)

	hub := wshub.New()

	notificationManager := notification.NewManager()
	notificationManager.RegisterNotifier(notification.WebsocketSystem, notification.NewWebsocketNotifier(hub))
	if config.EmailConfig.To != "" {
		var smtpConfig notification.SMTPConfig
		copier.Copy(&smtpConfig, &config.EmailConfig)
		emailNotifier, err := notification.NewEmailNotifier(smtpConfig)
		if err != nil {
			slog.Error("Failed creating email notifier", "host", smtpConfig.Host, "err", err)
			os.Exit(-1)
		}
		notificationManager.RegisterNotifier(notification.EmailSystem, emailNotifier)
	}

	accountService, err := telegram.NewAccountService(telegram.Config{
		APIID:      config.TelegramConfig.APIID,
		APIHash:    config.TelegramConfig.APIHash,
		SessionDir: config.TelegramConfig.SessionDir,
	}, telegram.NewNoOpClientFactory(), notificationManager)
	if err != nil {
		slog.Error("Failed creating account service", "sessionDir", config.TelegramConfig.SessionDir, "err", err)
		os.Exit(-1)
	}

	userHandle := users.NewHandle(userService, jwtService)
	telegramHandle := telegram.NewHandle(accountService)

	server.R.Post("/api/users/login", userHandle.Login)

	tokenAuth := jwtService.TokenAuth()

	server.R.Group(func(r chi.Router) {
		r.Use(auth.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))
		r.Post("/api/users", userHandle.CreateUser)
		r.Route("/api/telegram", telegramHandle.RegisterRoutes)
		r.Handle("/hubs/updates", hub)
	})

	server.Run()
}
