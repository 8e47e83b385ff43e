package main

import (
	"github.com/sirupsen/logrus"

	"github.com/JACK-Producer/endtime-loud-cry/cmd/config"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/auth"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/database"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/handlers"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/mailer"
)

func main() {
	config.Load()

	database.Init(config.DatabasePath)
	defer database.DB.Close()

	// The admin account only ever comes from this bootstrap; there is
	// no registration endpoint.
	if err := auth.Bootstrap(database.DB, config.AdminUsername, config.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("failed to bootstrap admin account")
	}

	smtp := mailer.New(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword, config.SMTPFrom)

	r := handlers.NewRouter(database.DB, smtp)
	r.LoadHTMLGlob("templates/*.html")

	logrus.WithField("addr", config.ServerAddr).Info("starting server")
	if err := r.Run(config.ServerAddr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
