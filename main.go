package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"

	"orgusers-api/internal"
	"orgusers-api/internal/event"
	"orgusers-api/internal/organizationuser"
	"orgusers-api/pkg/auth"
	"orgusers-api/pkg/authorization"
	"orgusers-api/pkg/config"
	"orgusers-api/pkg/log"
	orgusersadapter "orgusers-api/pkg/organizationuser"
	"orgusers-api/pkg/postgres"
	pgevent "orgusers-api/pkg/postgres/event"
	pgorganizationuser "orgusers-api/pkg/postgres/organizationuser"
	"orgusers-api/pkg/redis"
)

func main() {
	cfgReader := config.NewConfigReader()
	cfg := cfgReader.Read()

	if _, err := log.Setup(cfg.Log); err != nil {
		zap.L().Fatal("failed to set up logger", zap.Error(err))
	}
	defer func() {
		_ = zap.L().Sync()
	}()

	var traceProvider *sdktrace.TracerProvider
	if cfg.Otel.Enabled {
		traceProvider = initTracer(cfg)
	}

	if err := postgres.RunMigrations(cfg.PostgresConfig.GetMigrationUrl(), cfg.PostgresConfig.MigrationsPath); err != nil {
		zap.L().Fatal("failed to run migrations", zap.Error(err))
	}

	connectionPool := postgres.NewConnectionPool(cfg, traceProvider)
	defer connectionPool.Close()

	organizationUserRepository := pgorganizationuser.NewOrganizationUserRepository(
		connectionPool,
		postgres.NewTracer(traceProvider, "OrganizationUserRepository"),
	)
	eventRepository := pgevent.NewEventRepository(connectionPool, postgres.NewTracer(traceProvider, "EventRepository"))
	var eventQueue event.Queue = pgevent.NewOutboxQueue(connectionPool, postgres.NewTracer(traceProvider, "OutboxQueue"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		zap.L().Fatal("failed to connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisClient.Close()
	}()

	authorizationContext := authorization.NewCurrentContext(orgusersadapter.NewRoleCheckerAdapter(organizationUserRepository))
	eventService := event.NewService(eventRepository)
	organizationUserService := organizationuser.NewService(
		organizationUserRepository,
		authorizationContext,
		organizationuser.NewHasConfirmedOwnersExceptQuery(organizationUserRepository),
		eventService,
	)

	eventQueue.Start(ctx, redis.NewEventPublisher(redisClient), cfg.EventQueue.GetBatchSize(), cfg.EventQueue.GetPollInterval())

	directorySync := organizationuser.NewDirectorySync(organizationUserService, redis.NewSubscriber(redisClient))
	if err := directorySync.Start(ctx); err != nil {
		zap.L().Fatal("failed to start directory sync", zap.Error(err))
	}

	authMiddleware := auth.NewMiddleware([]byte(cfg.JwtSecret))

	handlers := []internal.GlobalHandler{
		organizationuser.NewHandler(organizationUserService, authorizationContext, authMiddleware.Handler()),
	}

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), log.GinLogger())
	for _, handler := range handlers {
		handler.RegisterRoutes(router)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodDelete, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	server := &http.Server{
		Addr:    cfg.Server.GetServerAddress(),
		Handler: corsHandler.Handler(router),
	}

	go func() {
		zap.L().Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP server error", zap.Error(err))
		}
	}()

	gracefulShutdown(server, func() {
		cancel()
		eventQueue.Stop()
		if traceProvider != nil {
			_ = traceProvider.Shutdown(context.Background())
		}
	})
}

func gracefulShutdown(server *http.Server, stopWorkers func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP shutdown error", zap.Error(err))
	}

	stopWorkers()
}

func initTracer(cfg *config.Config) *sdktrace.TracerProvider {
	ctx := context.Background()
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String("orgusers-api"),
			semconv.ServiceVersionKey.String("1.0.0"),
		),
	)
	if err != nil {
		zap.L().Fatal("failed to create resource", zap.Error(err))
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Otel.TraceEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		zap.L().Fatal("failed to create trace exporter", zap.Error(err))
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExporter),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	zap.L().Info("OpenTelemetry tracing enabled", zap.String("endpoint", cfg.Otel.TraceEndpoint))
	return tracerProvider
}
