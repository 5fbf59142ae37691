// Command seed wipes the configured database and reloads the development
// fixtures, equivalent to the executeSeed mutation but runnable without a
// server.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Fabirm9/nest-graphql/internal/core/config"
	"github.com/Fabirm9/nest-graphql/internal/core/database"
	"github.com/Fabirm9/nest-graphql/internal/core/logger"
	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/internal/repo"
	"github.com/Fabirm9/nest-graphql/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Item{},
		&domain.List{},
		&domain.ListItem{},
	); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	userRepo := repo.NewUserRepo(db)
	itemRepo := repo.NewItemRepo(db)
	listRepo := repo.NewListRepo(db)
	listItemRepo := repo.NewListItemRepo(db)

	users := service.NewUsers(userRepo, nil, log)
	items := service.NewItems(itemRepo, log)
	lists := service.NewLists(listRepo, log)
	listItems := service.NewListItems(listItemRepo, log)

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

	if _, err := seed.Execute(context.Background()); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed finished")
}
