package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"

	accountv1 "account-service/api/account/v1"
	accounthandler "account-service/internal/account/handler"
	"account-service/internal/account/httpapi"
	"account-service/internal/account/service"
	"account-service/internal/config"
	"account-service/internal/db"
	"account-service/internal/devotp"
	devotphandler "account-service/internal/devotp/handler"
	healthcheck "account-service/internal/health"
	"account-service/internal/logger"
	"account-service/internal/notify/sms"
	otprepo "account-service/internal/otp/repository"
	"account-service/internal/security"
	"account-service/internal/server"
	"account-service/internal/telemetry"
	"account-service/internal/telemetry/loki"
	telemetryotel "account-service/internal/telemetry/otel"
	"account-service/internal/telemetry/producer"
	userrepo "account-service/internal/user/repository"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.OTLPInsecure, log)
	if err != nil {
		return err
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Warn("otel shutdown", zap.Error(err))
		}
	}()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	var otps otprepo.Repository
	switch cfg.OTPStore {
	case config.OTPStoreRedis:
		client := otprepo.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			return err
		}
		otps = otprepo.NewRedisRepository(client)
	default:
		otps = otprepo.NewPostgresRepository(conn)
	}

	pub, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		return fmt.Errorf("JWT_PUBLIC_KEY: %w", err)
	}
	tokens := security.NewTokenProvider(nil, pub, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())

	opts := []service.Option{
		service.WithLogger(log),
		service.WithOTPTTL(cfg.OTPTTL()),
		service.WithSendTimeout(cfg.SMSTimeout()),
	}
	var devStore *devotp.MemoryStore
	if cfg.OTPReturnToClient {
		devStore = devotp.NewMemoryStore()
		opts = append(opts, service.WithDevOTPStore(devStore))
		log.Warn("dev OTP mode enabled: codes are not sent by SMS and are readable via DevService")
	}
	sender := sms.NewSMSLocalClient(cfg.SMSLocalAPIKey, cfg.SMSLocalBaseURL, cfg.SMSLocalSender)
	accountSvc := service.NewAccountService(userrepo.NewPostgresRepository(conn), otps, sender, opts...)

	// Sinks are added only when configured; a typed nil must not reach the fan-out.
	var sinks []telemetry.EventEmitter
	kafkaProducer := producer.NewKafkaProducer(cfg.TelemetryKafkaBrokersList(), cfg.TelemetryKafkaTopic, log)
	if kafkaProducer != nil {
		sinks = append(sinks, kafkaProducer)
	}
	if cfg.OTLPEndpoint != "" {
		sinks = append(sinks, telemetryotel.NewEventEmitter(providers.LoggerProvider))
	}
	if lokiClient := loki.NewClient(cfg.LokiURL); lokiClient != nil {
		sinks = append(sinks, lokiClient)
	}
	events := telemetry.NewFanout(sinks...)

	healthSrv := health.NewServer()
	checker := healthcheck.NewChecker(conn, healthSrv, 0, log, accountv1.AccountService_ServiceDesc.ServiceName)
	go checker.Run(ctx)

	gs := server.NewGRPCServer(server.Options{
		Tokens:     tokens,
		Telemetry:  events,
		Logger:     log,
		Instrument: true,
	})
	deps := server.Deps{
		Account: accounthandler.NewServer(accountSvc, log),
		Health:  healthSrv,
	}
	if devStore != nil {
		deps.DevOTP = devotphandler.NewServer(devStore)
	}
	server.RegisterServices(gs, deps)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}
	errCh := make(chan error, 2)
	go func() {
		log.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		errCh <- gs.Serve(lis)
	}()

	var httpSrv *http.Server
	if cfg.HTTPAddr != "" {
		httpSrv = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           httpapi.NewHandler(accountSvc, tokens, conn, log).Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			log.Info("HTTP gateway listening", zap.String("addr", cfg.HTTPAddr))
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		log.Error("server failed", zap.Error(err))
	}

	healthSrv.Shutdown()
	if httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("http shutdown", zap.Error(err))
		}
		cancel()
	}
	gs.GracefulStop()

	// Let in-flight async telemetry finish before closing sinks.
	time.Sleep(telemetry.ShutdownDrainDuration)
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			log.Warn("kafka producer close", zap.Error(err))
		}
	}
	log.Info("server stopped")
	return nil
}
