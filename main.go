package main

import (
	"log"

	api "crockpot-backend/cmd/api"
	authdomain "crockpot-backend/internal/auth/domain"
	authrepo "crockpot-backend/internal/auth/repository"
	"crockpot-backend/internal/auth/token"
	authusecase "crockpot-backend/internal/auth/usecase"
	itemdomain "crockpot-backend/internal/item/domain"
	itemrepo "crockpot-backend/internal/item/repository"
	recipedomain "crockpot-backend/internal/recipe/domain"
	reciperepo "crockpot-backend/internal/recipe/repository"
	recipeusecase "crockpot-backend/internal/recipe/usecase"
	listdomain "crockpot-backend/internal/shoppinglist/domain"
	listrepo "crockpot-backend/internal/shoppinglist/repository"
	listusecase "crockpot-backend/internal/shoppinglist/usecase"
	unitdomain "crockpot-backend/internal/unit/domain"
	unitrepo "crockpot-backend/internal/unit/repository"
	"crockpot-backend/pkg/config"
	"crockpot-backend/pkg/database"
	"crockpot-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&itemdomain.ItemCategory{},
		&itemdomain.Item{},
		&unitdomain.Unit{},
		&recipedomain.RecipeCategory{},
		&recipedomain.Recipe{},
		&listdomain.ShoppingList{},
		&listdomain.ShoppingListItem{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authrepo.NewUserRepository(db)
	itemRepository := itemrepo.NewItemRepository(db)
	unitRepository := unitrepo.NewUnitRepository(db)
	recipeRepository := reciperepo.NewRecipeRepository(db)
	listRepository := listrepo.NewShoppingListRepository(db)

	// Token codec: two independent secrets keep access and refresh
	// tokens from being swapped for one another.
	codec := token.NewCodec(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authusecase.NewAuthUsecase(userRepo)
	recipeUsecaseInstance := recipeusecase.NewRecipeUsecase(recipeRepository, userRepo)
	listUsecaseInstance := listusecase.NewShoppingListUsecase(listRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		recipeUsecaseInstance,
		listUsecaseInstance,
		userRepo,
		itemRepository,
		unitRepository,
		recipeRepository,
		codec,
		cfg,
		zapLogger,
	)

	zapLogger.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
