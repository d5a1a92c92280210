package api

import (
	authrepo "crockpot-backend/internal/auth/repository"
	"crockpot-backend/internal/auth/token"
	authusecase "crockpot-backend/internal/auth/usecase"
	itemrepo "crockpot-backend/internal/item/repository"
	reciperepo "crockpot-backend/internal/recipe/repository"
	recipeusecase "crockpot-backend/internal/recipe/usecase"
	listusecase "crockpot-backend/internal/shoppinglist/usecase"
	unitdelivery "crockpot-backend/internal/unit/delivery"
	unitrepo "crockpot-backend/internal/unit/repository"
	"crockpot-backend/pkg/apperrors"
	"crockpot-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	authUsecase   authusecase.AuthUsecase
	recipeUsecase recipeusecase.RecipeUsecase
	listUsecase   listusecase.ShoppingListUsecase
	userRepo      authrepo.UserRepository
	itemRepo      itemrepo.ItemRepository
	unitRepo      unitrepo.UnitRepository
	recipeRepo    reciperepo.RecipeRepository
	codec         *token.Codec
	config        *config.Config
	logger        *zap.Logger
}

func NewHandler(
	authUsecase authusecase.AuthUsecase,
	recipeUsecase recipeusecase.RecipeUsecase,
	listUsecase listusecase.ShoppingListUsecase,
	userRepo authrepo.UserRepository,
	itemRepo itemrepo.ItemRepository,
	unitRepo unitrepo.UnitRepository,
	recipeRepo reciperepo.RecipeRepository,
	codec *token.Codec,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authUsecase:   authUsecase,
		recipeUsecase: recipeUsecase,
		listUsecase:   listUsecase,
		userRepo:      userRepo,
		itemRepo:      itemRepo,
		unitRepo:      unitRepo,
		recipeRepo:    recipeRepo,
		codec:         codec,
		config:        cfg,
		logger:        logger,
	}
}

func (h *Handler) unitHandler() *unitdelivery.UnitHandler {
	return unitdelivery.NewUnitHandler(h.unitRepo)
}

// Engine assembles the gin engine: logging and CORS first, the
// terminal error handler wrapping every route, then the feature
// routes.
func (h *Handler) Engine() *gin.Engine {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(h.logger))
	r.Use(h.corsMiddleware())
	r.Use(apperrors.ErrorHandler(h.logger, h.config.IsProduction()))

	r.NoRoute(apperrors.NoRoute)

	h.SetupRoutes(r)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	origin := h.config.CORSOrigin
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
