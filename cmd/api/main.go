package main

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
	"google.golang.org/api/calendar/v3"

	"calendarhub/config"
	_ "calendarhub/docs" // Swagger docs
	authHTTP "calendarhub/internal/auth/delivery/http"
	authUC "calendarhub/internal/auth/usecase"
	calendarHTTP "calendarhub/internal/calendar/delivery/http"
	calendarUC "calendarhub/internal/calendar/usecase"
	"calendarhub/internal/httpserver"
	"calendarhub/internal/middleware"
	userHTTP "calendarhub/internal/user/delivery/http"
	userRedis "calendarhub/internal/user/repository/redis"
	userUC "calendarhub/internal/user/usecase"
	"calendarhub/pkg/gcal"
	"calendarhub/pkg/log"
	"calendarhub/pkg/msgraph"
	"calendarhub/pkg/session"
)

// @title       CalendarHub API
// @description Calendar account aggregator with bidirectional Outlook and Google sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting CalendarHub...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Redis user store
	redisOpts, err := goredis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Fatalf(ctx, "Invalid redis url: %v", err)
		return
	}
	rdb := goredis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatalf(ctx, "Failed to connect to redis: %v", err)
		return
	}
	defer rdb.Close()
	userRepo := userRedis.New(rdb, logger)

	// 4. Sessions
	sessions := session.NewManager(cfg.Session.Secret, time.Duration(cfg.Session.TTLDays)*24*time.Hour)

	// 5. OAuth provider configs
	googleOAuth := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			calendar.CalendarScope,
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
	}
	outlookOAuth := &oauth2.Config{
		ClientID:     cfg.Microsoft.ClientID,
		ClientSecret: cfg.Microsoft.ClientSecret,
		RedirectURL:  cfg.Microsoft.RedirectURL,
		Endpoint:     microsoft.AzureADEndpoint(cfg.Microsoft.Tenant),
		Scopes: []string{
			"offline_access",
			"User.Read",
			"Calendars.ReadWrite",
		},
	}

	// 6. Provider API clients
	outlookClient := msgraph.NewClient()
	googleClient := gcal.NewClient()

	// 7. Use cases
	calUC := calendarUC.New(logger, userRepo, outlookClient, googleClient, cfg.Sync.PageSize)
	loginUC := authUC.New(logger, userRepo, googleOAuth, outlookOAuth, googleClient, outlookClient)
	accountUC := userUC.New(logger, userRepo)

	// 8. Delivery
	mw := middleware.New(logger, middleware.Config{
		Sessions:       sessions,
		AdminKey:       cfg.Admin.APIKey,
		SyncRatePerMin: cfg.Sync.RateLimitPerMin,
	})

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		AuthHandler:     authHTTP.New(logger, loginUC, sessions),
		CalendarHandler: calendarHTTP.New(logger, calUC),
		UserHandler:     userHTTP.New(logger, accountUC),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
