package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tripgen/cmd/fx/config_fx"
	"tripgen/cmd/fx/controllers_fx"
	"tripgen/cmd/fx/db_fx"
	"tripgen/cmd/fx/llm_fx"
	"tripgen/cmd/fx/logger_fx"
	"tripgen/cmd/fx/memcache_fx"
	"tripgen/cmd/fx/trip_fx"
	"tripgen/internal/api/controllers"
	"tripgen/internal/config"
	"tripgen/pkg/middleware"
	"tripgen/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		llm_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	logger *zap.Logger,
	tripController *controllers.TripController,
	photoController *controllers.PhotoController) (*gin.Engine, error) {

	if err := utils.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, middleware.NewRateLimiter(cfg.RateLimitPerMinute), tripController, photoController)

	return r, nil
}

func RegisterRoutes(r *gin.Engine,
	limiter *middleware.RateLimiter,
	tripController *controllers.TripController,
	photoController *controllers.PhotoController) {

	api := r.Group("/api", limiter.Limit())
	api.GET("/health", tripController.HealthHandler)

	tripGroup := api.Group("/trip")
	tripGroup.POST("/generate-itinerary", tripController.GenerateItineraryHandler)
	tripGroup.POST("/travel-info", tripController.TravelInfoHandler)
	tripGroup.GET("/languages", tripController.LanguagesHandler)

	photoGroup := api.Group("/photo")
	photoGroup.POST("/analyze", photoController.AnalyzePhotoHandler)
	photoGroup.GET("/health", photoController.HealthHandler)
}
