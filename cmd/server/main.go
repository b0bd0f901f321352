package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/db"
	iotGrpc "github.com/AbderraoufSelidja/Irchad-device-management/pkg/grpc"
	iotHttp "github.com/AbderraoufSelidja/Irchad-device-management/pkg/http"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/hub"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/iot"
	iotMqtt "github.com/AbderraoufSelidja/Irchad-device-management/pkg/mqtt"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment only")
	}

	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	var dbInstance *db.DB
	switch cfg.DBType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	}

	logger := common.GetLogger()

	liveHub := hub.New(cfg.BroadcastTimeout)

	iotCore := (&iot.IOT{
		Db: *dbInstance,
	}).WithDefaultServices()
	iotCore.WithServices(iot.ServiceOpts{Broadcaster: liveHub})

	// one store shared by every transport so a device has a single bucket
	var limiterStore *iot.RateLimiterStore
	if cfg.RateLimitEnabled() {
		limiterStore = iot.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst)
	}
	logger.Info("Rate limiter configured",
		zap.Bool("enabled", limiterStore != nil),
		zap.Float64("default_rate", cfg.DefaultRate),
		zap.Int("default_burst", cfg.DefaultBurst))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var grpcServer *grpc.Server
	if cfg.GrpcHostPort != "" {
		iotGrpcServer := iotGrpc.IOTServer{
			Iot:              iotCore,
			Hub:              liveHub,
			RateLimiterStore: limiterStore,
		}
		interceptor := iotGrpcServer.CreateRateLimitInterceptor([]string{
			iotGrpc.IngestStatusMethod,
			iotGrpc.GetAlertsMethod,
		})
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		iotGrpc.RegisterStatusServiceServer(grpcServer, &iotGrpcServer)

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("Starting gRPC server on: " + cfg.GrpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				logger.Error("gRPC server stopped", zap.Error(err))
				stop()
			}
		}()
	}

	var ingestor *iotMqtt.Ingestor
	if cfg.MqttBroker != "" {
		ingestor = &iotMqtt.Ingestor{
			Iot:              iotCore,
			RateLimiterStore: limiterStore,
			Broker:           cfg.MqttBroker,
			Topic:            cfg.MqttTopic,
		}
		if err := ingestor.Start(); err != nil {
			log.Fatalf("mqtt ingestor failed to start: %v", err)
		}
		logger.Info("MQTT ingestor started",
			zap.String("broker", cfg.MqttBroker),
			zap.String("topic", cfg.MqttTopic))
	}

	rs := &iotHttp.RestfulServer{
		Server:           gin.Default(),
		Iot:              iotCore,
		Hub:              liveHub,
		RateLimiterStore: limiterStore,
	}
	rs.Setup()

	httpServer := &http.Server{
		Addr:    cfg.HttpHostPort,
		Handler: rs.Server,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// live subscribers first, or open websockets and streams hold the
	// servers up until the timeout
	liveHub.Close()

	if ingestor != nil {
		ingestor.Stop()
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	_ = logger.Sync()
}
