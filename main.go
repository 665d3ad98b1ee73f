package main

import (
	"beautystoreapi/config"
	"beautystoreapi/routers"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	conf, err := config.Load(logger)
	if err != nil {
		logger.Fatal(err)
	}

	if level, err := logrus.ParseLevel(conf.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	router, db := routers.Route(conf, logger, nil)

	srv := &http.Server{
		Addr:         ":" + conf.Port,
		Handler:      router,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}
	go func() {
		logger.Println(srv.ListenAndServe())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// drain in-flight requests before releasing the pool
	logger.Println(srv.Shutdown(context.Background()))
	logger.Println(db.Close())
}
