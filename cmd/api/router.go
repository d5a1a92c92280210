package api

import (
	"net/http"

	authdelivery "crockpot-backend/internal/auth/delivery"
	itemdelivery "crockpot-backend/internal/item/delivery"
	recipedelivery "crockpot-backend/internal/recipe/delivery"
	listdelivery "crockpot-backend/internal/shoppinglist/delivery"
	userdelivery "crockpot-backend/internal/user/delivery"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every feature's handlers into the engine. All
// protected routes go through the authentication middleware; catalog
// mutations additionally require the admin role.
func (h *Handler) SetupRoutes(r *gin.Engine) {
	authHandler := authdelivery.NewAuthHandler(h.authUsecase, h.codec, h.config.JWTRefreshExpiry, h.config.IsProduction())
	userHandler := userdelivery.NewUserHandler(h.userRepo, h.recipeRepo)
	itemHandler := itemdelivery.NewItemHandler(h.itemRepo)
	unitHandler := h.unitHandler()
	recipeHandler := recipedelivery.NewRecipeHandler(h.recipeUsecase, h.recipeRepo)
	listHandler := listdelivery.NewShoppingListHandler(h.listUsecase)

	authenticate := authdelivery.Authenticate(h.codec, h.userRepo)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the crockpot API"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/google", authHandler.GoogleSignIn)
		auth.GET("/refresh-token", authdelivery.RefreshTokens(h.codec, h.config.JWTRefreshExpiry, h.config.IsProduction()))
		auth.POST("/logout", authHandler.Logout)
	}

	users := r.Group("/users")
	users.Use(authenticate)
	{
		users.GET("/me", userHandler.Me)
		users.POST("/favourites/:recipeId", userHandler.ToggleFavourite)
		users.PUT("/menu", userHandler.UpdateMenu)
	}

	items := r.Group("/items")
	{
		items.GET("", itemHandler.GetItems)
		items.GET("/categories", itemHandler.GetItemCategories)
		items.GET("/:id", itemHandler.GetItemByID)
		items.POST("", authenticate, authdelivery.RequireAdmin, itemHandler.CreateItem)
		items.POST("/category", authenticate, authdelivery.RequireAdmin, itemHandler.CreateItemCategory)
	}

	units := r.Group("/units")
	{
		units.GET("", unitHandler.GetUnits)
		units.POST("", authenticate, authdelivery.RequireAdmin, unitHandler.CreateUnit)
	}

	recipes := r.Group("/recipes")
	{
		recipes.GET("", recipeHandler.GetRecipes)
		recipes.GET("/categories", recipeHandler.GetRecipeCategories)
		recipes.GET("/:id", recipeHandler.GetRecipeByID)
		recipes.POST("", authenticate, recipeHandler.CreateRecipe)
		recipes.PATCH("/:id/approve", authenticate, authdelivery.RequireAdmin, recipeHandler.ApproveRecipe)
		recipes.DELETE("/:id", authenticate, authdelivery.RequireAdmin, recipeHandler.DeleteRecipe)
		recipes.POST("/category", authenticate, authdelivery.RequireAdmin, recipeHandler.CreateRecipeCategory)
	}

	lists := r.Group("/shopping-lists")
	lists.Use(authenticate)
	{
		lists.GET("", listHandler.GetList)
		lists.POST("/items", listHandler.AddItem)
		lists.PATCH("/items/:id/obtained", listHandler.ToggleObtained)
		lists.DELETE("/items/:id", listHandler.RemoveItem)
		lists.DELETE("", listHandler.Clear)
	}
}
