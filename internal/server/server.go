package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"time"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/config"
	"github.com/emrgen/glossary/internal/queue"
	"github.com/emrgen/glossary/internal/service"
	"github.com/emrgen/glossary/internal/store"
	"github.com/gin-gonic/gin"
	grpcmiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_logrus "github.com/grpc-ecosystem/go-grpc-middleware/logging/logrus"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

// Server runs the gRPC service and the REST facade side by side.
type Server struct {
	cfg *config.Config
}

// NewServer creates a new server
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Start starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) Start() {
	if err := Start(s.cfg); err != nil {
		logrus.Fatalf("error starting server: %v", err)
	}
}

// NewGrpcServer builds a gRPC server that runs at most workers handlers concurrently.
func NewGrpcServer(glossary v1.GlossaryServiceServer, workers int) *grpc.Server {
	if workers <= 0 {
		workers = 1
	}

	grpcServer := grpc.NewServer(
		grpc.NumStreamWorkers(uint32(workers)),
		grpc.UnaryInterceptor(grpcmiddleware.ChainUnaryServer(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
			grpc_ctxtags.UnaryServerInterceptor(),
			UnaryRequestIDInterceptor(),
			grpc_logrus.UnaryServerInterceptor(logrus.NewEntry(logrus.StandardLogger())),
			UnaryMetricsInterceptor(),
			// wait for a worker slot before validating or touching the store
			UnaryConcurrencyLimitInterceptor(workers),
			UnaryValidationInterceptor(),
			// log the request time
			UnaryGrpcRequestTimeInterceptor(),
		)),
	)

	v1.RegisterGlossaryServiceServer(grpcServer, glossary)

	return grpcServer
}

// Start opens the store and serves gRPC and REST until a shutdown signal arrives.
func Start(cfg *config.Config) error {
	config.SetupLogger(cfg.Log)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDb(cfg.Database)
	if err != nil {
		return err
	}

	glossaryStore := store.NewGormStore(db)
	if err := glossaryStore.Migrate(); err != nil {
		return err
	}

	publisher, err := newPublisher(cfg.Events)
	if err != nil {
		return err
	}
	defer publisher.Close()

	glossary := service.NewGlossaryService(glossaryStore, publisher)

	gl, err := net.Listen("tcp", ":"+cfg.Server.GrpcPort)
	if err != nil {
		return err
	}

	rl, err := net.Listen("tcp", ":"+cfg.Server.HttpPort)
	if err != nil {
		return err
	}

	grpcServer := NewGrpcServer(glossary, cfg.Server.Workers)
	restServer := &http.Server{
		Handler:           NewRestHandler(glossary),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGTERM, unix.SIGINT)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logrus.Infof("starting grpc server on: %s (%d workers)", gl.Addr(), cfg.Server.Workers)
		return grpcServer.Serve(gl)
	})

	group.Go(func() error {
		logrus.Infof("starting rest gateway on: %s", rl.Addr())
		if err := restServer.Serve(rl); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		logrus.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		grpcServer.GracefulStop()
		if err := restServer.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("error stopping rest gateway: %v", err)
		}
		return nil
	})

	logrus.Infof("Press Ctrl+C to stop the server")

	if err := group.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}

// newPublisher connects to Redis when an address is configured.
func newPublisher(cfg config.EventsConfig) (queue.Publisher, error) {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR not set, change events are disabled")
		return queue.NewNop(), nil
	}

	publisher := queue.NewRedisPublisher(queue.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Channel:  cfg.Channel,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := publisher.Ping(ctx); err != nil {
		_ = publisher.Close()
		return nil, err
	}

	logrus.Infof("publishing change events to redis channel %s", cfg.Channel)
	return publisher, nil
}
