package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/emirhly/marketplace/cmd/config"
	"github.com/emirhly/marketplace/thirdparty/rabbitmq"
	"github.com/emirhly/marketplace/utils/logger"
	"go.uber.org/zap"
)

// Image cleanup worker: consumes listing-deleted events and removes the
// orphaned image files through the internal API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.BaseURL, cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("image cleanup consumer running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down consumer")
}
