// file: app/app.go

package app

import (
	"context"
	"errors"
	"fmt"
	"ged-apae-console/client"
	"ged-apae-console/config"
	"ged-apae-console/db"
	"ged-apae-console/handler"
	"ged-apae-console/logger"
	"ged-apae-console/repository"
	"ged-apae-console/router"
	"ged-apae-console/service"
	"ged-apae-console/web"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

// App is the wired console: the HTTP handler plus the connections it owns.
type App struct {
	Router http.Handler
	Tokens *repository.TokenRepository

	closers []func() error
}

// Close releases the database and Redis connections.
func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			logger.Log.WithError(err).Warn("Failed to close connection")
		}
	}
}

// New wires every layer from cfg.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{}

	var rdb *redis.Client
	if cfg.CacheEnabled() {
		conn, err := db.ConnectRedis(ctx, cfg.Redis)
		switch {
		case err == nil:
			rdb = conn
			a.closers = append(a.closers, rdb.Close)
		case cfg.Session.Store == config.StoreRedis:
			return nil, err
		default:
			logger.Log.WithError(err).Warn("Redis unavailable, permission catalogue will not be cached")
		}
	}

	storage, err := a.newStorage(cfg, rdb)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Tokens = repository.NewTokenRepository(storage, cfg.Session.TokenKey, cfg.Session.PermissionsKey)

	backend, err := client.New(client.Options{
		BaseURL:     cfg.Backend.BaseURL,
		Timeout:     cfg.Backend.Timeout,
		Tokens:      a.Tokens,
		ExemptPaths: withLoginExempt(cfg.Auth.ExemptPaths),
		OnSessionInvalidated: func(req *http.Request) {
			logger.Log.WithField("path", req.URL.Path).Warn("Session ended by the backend, operator must sign in again")
		},
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	var cache service.ICacheClient
	if rdb != nil {
		cache = rdb
	}

	// --- Services ---
	sessionService := service.NewSessionService(a.Tokens, nil)
	authService := service.NewAuthService(backend, a.Tokens)
	alunoService := service.NewAlunoService(backend)
	documentoService := service.NewDocumentoService(backend)
	tipoService := service.NewTipoDocumentoService(backend)
	usuarioService := service.NewUsuarioService(backend)
	grupoService := service.NewGrupoService(backend, cache)

	// --- Handlers ---
	renderer, err := web.NewRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	console := handler.NewConsole(sessionService, renderer, cfg.Auth.LoginRoute)

	a.Router = router.NewRouter(router.Handlers{
		Console:       console,
		Auth:          handler.NewAuthHandler(console, authService),
		Home:          handler.NewHomeHandler(console),
		Aluno:         handler.NewAlunoHandler(console, alunoService),
		Documento:     handler.NewDocumentoHandler(console, documentoService, tipoService),
		TipoDocumento: handler.NewTipoDocumentoHandler(console, tipoService),
		Usuario:       handler.NewUsuarioHandler(console, usuarioService),
		Grupo:         handler.NewGrupoHandler(console, grupoService),
	})
	return a, nil
}

// withLoginExempt adds the backend login endpoint to the exempt list, so a
// refused login never ends the session already stored.
func withLoginExempt(paths []string) []string {
	if slices.Contains(paths, service.LoginPath) {
		return paths
	}
	return append(slices.Clone(paths), service.LoginPath)
}

func (a *App) newStorage(cfg config.Config, rdb *redis.Client) (repository.IStorage, error) {
	log := logger.Log.WithField("store", cfg.Session.Store)

	switch cfg.Session.Store {
	case config.StoreMemory:
		log.Warn("Session kept in memory, it is lost on restart")
		return repository.NewMemoryStorage(), nil
	case config.StoreFile:
		log.WithField("path", cfg.Session.FilePath).Info("Session kept in a local file")
		return repository.NewFileStorage(cfg.Session.FilePath), nil
	case config.StoreRedis:
		if rdb == nil {
			return nil, errors.New("redis session store requires a redis connection")
		}
		log.Info("Session kept in Redis")
		return repository.NewRedisStorage(rdb, cfg.Session.RedisPrefix), nil
	case config.StorePostgres:
		database, err := db.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, database.Close)
		if err := db.Migrate(database); err != nil {
			return nil, err
		}
		log.Info("Session kept in Postgres")
		return repository.NewPostgresStorage(database), nil
	}
	return nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
}

// Run loads the configuration, serves the console and shuts it down gracefully.
func Run() {
	logger.Init()
	if err := config.LoadConfig("."); err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Configuration loaded successfully")

	a, err := New(context.Background(), config.AppConfig)
	if err != nil {
		logger.Log.Fatalf("Error wiring the console: %v", err)
	}
	defer a.Close()

	// --- Start the Server with Graceful Shutdown ---
	addr := config.AppConfig.ListenAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Console starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logger.Log.Info("Console exited properly")
}
