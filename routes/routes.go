package routes

import (
	"github.com/gin-gonic/gin"

	"shop-backend/controllers"
	"shop-backend/store"
)

// SetupRoutes wires every endpoint onto the engine. All handlers share the
// single store handle established at startup; when it is nil the data
// endpoints answer 503 and /test reports it.
func SetupRoutes(r *gin.Engine, s store.Store) {
	r.GET("/", controllers.Root())
	r.GET("/test", controllers.TestDatabase(s))

	api := r.Group("/api")
	{
		api.GET("/schema", controllers.SchemaInfo())

		api.GET("/products", controllers.ListProducts(s))
		api.POST("/products", controllers.CreateProduct(s))

		api.GET("/categories", controllers.ListCategories(s))
		api.POST("/categories", controllers.CreateCategory(s))

		api.GET("/users", controllers.ListUsers(s))
		api.POST("/users", controllers.CreateUser(s))

		api.GET("/wishlist", controllers.GetWishlist(s))
		api.POST("/wishlist", controllers.AddToWishlist(s))

		api.GET("/orders", controllers.ListOrders(s))
		api.POST("/orders", controllers.CreateOrder(s))
	}
}
