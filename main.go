package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	appmodules "portal/app"
	coremodules "portal/core/app"
	"portal/core/config"
	"portal/core/database"
	"portal/core/emitter"
	"portal/core/logger"
	"portal/core/module"
	"portal/core/router"
	"portal/core/router/middleware"

	"github.com/joho/godotenv"
)

// @title Portal API
// @description Search API of the customer-service portal
// @version 1.0.0
// @BasePath /api
// @schemes http https
// @accept json
// @produce json

const shutdownTimeout = 10 * time.Second

// App represents the portal application
type App struct {
	config  *config.Config
	db      *database.Database
	router  *router.Router
	logger  logger.Logger
	emitter *emitter.Emitter

	verbose bool
}

// New creates a new application instance
func New() *App {
	verbose := false
	for _, arg := range os.Args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
			break
		}
	}
	return &App{verbose: verbose}
}

// Start initializes the application and serves until ctx is cancelled
func (app *App) Start(ctx context.Context) error {
	return app.
		loadEnvironment().
		initConfig().
		initLogger().
		initDatabase().
		initInfrastructure().
		initRouter().
		autoDiscoverModules().
		setupRoutes().
		displayServerInfo().
		run(ctx)
}

// loadEnvironment loads environment variables
func (app *App) loadEnvironment() *App {
	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load()
	return app
}

// initConfig initializes configuration
func (app *App) initConfig() *App {
	app.config = config.NewConfig()
	if err := app.config.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}
	return app
}

// initLogger initializes the logger
func (app *App) initLogger() *App {
	log, err := logger.NewLogger(logger.Config{
		Environment: app.config.Env,
		LogPath:     app.config.LogPath,
		Level:       app.config.LogLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	app.logger = log
	return app
}

// initDatabase initializes the database connection
func (app *App) initDatabase() *App {
	db, err := database.InitDB(app.config)
	if err != nil {
		app.logger.Error("Failed to initialize database", logger.Err(err))
		panic(fmt.Sprintf("Database initialization failed: %v", err))
	}

	app.db = db

	if app.verbose {
		app.logger.Info("Database connected",
			logger.String("driver", app.config.DBDriver),
			logger.Bool("seed_demo_data", app.config.SeedDemoData))
	}

	return app
}

// initInfrastructure initializes core infrastructure components
func (app *App) initInfrastructure() *App {
	app.emitter = emitter.New()
	return app
}

// initRouter initializes the router with middleware
func (app *App) initRouter() *App {
	app.router = router.New()
	app.setupMiddleware()

	if app.verbose {
		app.logger.Info("Router and middleware initialized")
	}

	return app
}

// setupMiddleware configures the global middleware chain
func (app *App) setupMiddleware() {
	app.router.Use(middleware.RequestID())
	app.router.Use(middleware.Recovery(app.logger))

	app.router.Use(func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			start := time.Now()
			err := next(c)

			app.logger.Info("Request",
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", c.Writer.Status()),
				logger.Duration("duration", time.Since(start)),
				logger.String("ip", c.ClientIP()),
				logger.String("request_id", c.GetString(middleware.RequestIDKey)),
			)
			return err
		}
	})
}

func (app *App) dependencies() module.Dependencies {
	return module.Dependencies{
		DB:      app.db.DB,
		Router:  app.router.Group(app.config.APIBasePath),
		Logger:  app.logger,
		Emitter: app.emitter,
		Config:  app.config,
	}
}

// autoDiscoverModules initializes the core modules, then the app modules
func (app *App) autoDiscoverModules() *App {
	deps := app.dependencies()

	orchestrator := module.NewOrchestrator(
		module.NewInitializer(app.logger),
		coremodules.NewCoreModules(appmodules.GetSearchProvider()),
		appmodules.NewAppModules(),
	)

	core := orchestrator.InitializeCoreModules(deps)
	modules := orchestrator.InitializeAppModules(deps)

	if app.verbose {
		app.logger.Info("Modules initialized",
			logger.Int("core", len(core)),
			logger.Int("app", len(modules)))
	}

	return app
}

// setupRoutes sets up basic system routes
func (app *App) setupRoutes() *App {
	app.router.GET("/health", func(c *router.Context) error {
		status := http.StatusOK
		state := "ok"
		if err := app.db.Ping(c.Context()); err != nil {
			status = http.StatusServiceUnavailable
			state = "database unreachable"
		}
		return c.JSON(status, map[string]any{
			"status":  state,
			"version": app.config.Version,
		})
	})

	return app
}

// displayServerInfo shows server startup information
func (app *App) displayServerInfo() *App {
	port := app.config.ServerPort

	fmt.Printf("\n\033[1;32mPortal Ready!\033[0m\n\n")
	fmt.Printf("\033[36mServer URLs:\033[0m\n")
	fmt.Printf("  Local:   http://localhost%s\n", port)
	fmt.Printf("  Network: http://%s%s\n", app.getLocalIP(), port)
	fmt.Printf("  Search:  http://localhost%s%s/search?q=\n\n", port, app.config.APIBasePath)

	return app
}

// getLocalIP gets the local network IP address
func (app *App) getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "localhost"
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return "localhost"
}

// run serves HTTP until ctx is done, then shuts down gracefully
func (app *App) run(ctx context.Context) error {
	port := app.config.ServerPort
	defer app.close()

	if app.verbose {
		app.logger.Info("Server starting", logger.String("port", port))
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.router.Run(port)
	}()

	select {
	case err := <-serveErr:
		if err == nil {
			return nil
		}
		if strings.Contains(err.Error(), "address already in use") {
			app.logger.Error("Server failed to start - Port already in use",
				logger.String("port", port),
				logger.Err(err))
			return fmt.Errorf("port %s is already in use; change SERVER_PORT in your .env file", port)
		}
		app.logger.Error("Server failed to start", logger.Err(err))
		return fmt.Errorf("server failed to start: %w", err)

	case <-ctx.Done():
		app.logger.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.router.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return <-serveErr
	}
}

func (app *App) close() {
	if err := app.db.Close(); err != nil {
		app.logger.Warn("Failed to close database", logger.Err(err))
	}
	_ = app.logger.Sync()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := New().Start(ctx)
	stop()

	if err != nil {
		fmt.Printf("\n\033[31mApplication failed to start:\033[0m\n%v\n\n", err)
		os.Exit(1)
	}
}
