package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Fabirm9/nest-graphql/internal/core/auth"
	"github.com/Fabirm9/nest-graphql/internal/core/cache"
	"github.com/Fabirm9/nest-graphql/internal/core/config"
	"github.com/Fabirm9/nest-graphql/internal/core/database"
	"github.com/Fabirm9/nest-graphql/internal/core/logger"
	"github.com/Fabirm9/nest-graphql/internal/core/server"
	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/internal/graph"
	"github.com/Fabirm9/nest-graphql/internal/repo"
	"github.com/Fabirm9/nest-graphql/internal/service"
	"github.com/Fabirm9/nest-graphql/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Item{},
			&domain.List{},
			&domain.ListItem{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var userCache *cache.Cache
	if cfg.Redis.Addr != "" {
		userCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis user cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	svc := buildServices(cfg, db, jwter, userCache, log)

	schema, err := graph.NewSchema(svc)
	if err != nil {
		log.Fatal("schema build failed", zap.Error(err))
	}

	r := router.NewAPIEngine(log, schema, jwter, svc.Auth)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	log.Info("graphql api starting",
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env),
		zap.String("endpoint", "/graphql"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("graphql api start FAILED", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("graphql api stopped gracefully")
}

func buildServices(cfg *config.Config, db *gorm.DB, jwter *auth.JWTer, userCache *cache.Cache, log *zap.Logger) graph.Services {
	userRepo := repo.NewUserRepo(db)
	itemRepo := repo.NewItemRepo(db)
	listRepo := repo.NewListRepo(db)
	listItemRepo := repo.NewListItemRepo(db)

	users := service.NewUsers(userRepo, userCache, log)
	items := service.NewItems(itemRepo, log)
	lists := service.NewLists(listRepo, log)
	listItems := service.NewListItems(listItemRepo, log)
	authSvc := service.NewAuth(users, jwter, userCache,
		time.Duration(cfg.Redis.UserTTL)*time.Second, log)
	seed := service.NewSeed(service.SeedDeps{
		Env:          cfg.App.Env,
		Users:        users,
		Items:        items,
		Lists:        lists,
		ListItems:    listItems,
		UserRepo:     userRepo,
		ItemRepo:     itemRepo,
		ListRepo:     listRepo,
		ListItemRepo: listItemRepo,
	}, log)

	return graph.Services{
		Auth:      authSvc,
		Users:     users,
		Items:     items,
		Lists:     lists,
		ListItems: listItems,
		Seed:      seed,
	}
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
