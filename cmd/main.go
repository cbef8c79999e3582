package main

import (
	"net/http"

	commentapp "github.com/emirhly/marketplace/application/comment"
	genreapp "github.com/emirhly/marketplace/application/genre"
	listingapp "github.com/emirhly/marketplace/application/listing"
	userapp "github.com/emirhly/marketplace/application/user"
	"github.com/emirhly/marketplace/cmd/config"
	redisclient "github.com/emirhly/marketplace/cmd/redis"
	_ "github.com/emirhly/marketplace/docs"
	commentRepo "github.com/emirhly/marketplace/repository/comment"
	genreRepo "github.com/emirhly/marketplace/repository/genre"
	listingRepo "github.com/emirhly/marketplace/repository/listing"
	redisRepo "github.com/emirhly/marketplace/repository/redis"
	txRepo "github.com/emirhly/marketplace/repository/tx"
	userRepo "github.com/emirhly/marketplace/repository/user"
	"github.com/emirhly/marketplace/thirdparty/rabbitmq"
	"github.com/emirhly/marketplace/transport"
	"github.com/emirhly/marketplace/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title MARKETPLACE API
// @version 1.0
// @description Classifieds marketplace API Documentation
// @host localhost:8000
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher for listing lifecycle events. Optional: the server
	// runs without eventing when the broker is unreachable.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, listing events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ListingRepo := listingRepo.NewListingRepository(db)
	CommentRepo := commentRepo.NewCommentRepository(db)
	GenreRepo := genreRepo.NewGenreRepository(db)
	RedisRepo := redisRepo.NewRepository()
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ListingApp := listingapp.NewListingApp(TxRepo, ListingRepo, CommentRepo, publisher, cfg.Images.Dir)
	CommentApp := commentapp.NewCommentApp(CommentRepo)
	GenreApp := genreapp.NewGenreApp(GenreRepo)

	httpTransport := transport.NewTransport(UserApp, ListingApp, CommentApp, GenreApp, cfg.Internal.APIKey, cfg.Images.Dir)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
