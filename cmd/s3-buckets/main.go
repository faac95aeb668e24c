package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"s3-buckets/internal/app/service"
	"s3-buckets/internal/config"
	"s3-buckets/internal/db"
	"s3-buckets/internal/pkg/app"
	"s3-buckets/internal/pkg/logging"
	"s3-buckets/internal/utils"
	"s3-buckets/internal/utils/gs"

	"github.com/jmoiron/sqlx"
)

func main() {
	confFile := flag.String("config", "conf/application.conf", "-config=<config file name>")
	port := flag.String("port", "", "-port=<service port>")
	flag.Parse()

	config.MustConfig(*confFile)
	conf := config.GetConfig()

	if *port == "" {
		*port = strconv.Itoa(config.Int(conf, "server.port", 8080))
	}

	logger, closer := logging.New(conf)
	defer closer.Close()

	if err := utils.CreatePID(utils.PIDFile); err != nil {
		logger.WithError(err).Fatal("Error writing PID file. Exiting...")
	}
	defer func() {
		if err := utils.RemovePID(utils.PIDFile); err != nil {
			logger.WithError(err).Error("Error removing PID file")
		}
	}()

	// Credentials fall back to the AWS SDK default chain when these are unset.
	api, err := service.InitS3(conf, os.Getenv("S3_ACCESS"), os.Getenv("S3_SECRET"))
	if err != nil {
		logger.WithError(err).Fatal("Error creating S3 client")
	}

	var d *sqlx.DB
	if config.Bool(conf, "db.enabled", false) {
		d, err = db.Connect(conf, os.Getenv("PGPASS"))
		if err != nil {
			logger.WithError(err).Fatal("Error connecting audit database")
		}
		defer d.Close()
		if err := db.Migrate(d); err != nil {
			logger.WithError(err).Fatal("Error migrating audit database")
		}
		logger.Info("Audit database connection successful")
	}

	a, err := app.New(conf, *port, api, d, logger)
	if err != nil {
		logger.WithError(err).Fatal("Error creating application")
	}

	go func() {
		if err := a.Run(); err != nil {
			logger.WithError(err).Fatal("Server error")
		}
	}()

	timeout := time.Duration(config.Int(conf, "server.shutdown_timeout", 10)) * time.Second
	gs.GracefulShutdown(a, timeout, logger)
}
