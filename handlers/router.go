package handlers

import (
	"apparel-backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps collects everything the router needs wired in. Handlers receive
// their stores through constructors; nothing reads process-wide state.
type Deps struct {
	Users      store.UserStore
	Secret     []byte
	UploadDir  string
	Auth       *AuthHandler
	Products   *ProductHandler
	Cart       *CartHandler
	Orders     *OrderHandler
	Categories *CategoryHandler
	Wishlist   *WishlistHandler
}

// NewRouter assembles the gin engine: CORS, the /api route tree and the
// read-only /uploads static mount.
func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	api := r.Group("/api")

	// Public
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)
	api.GET("/products", d.Products.ListProducts)
	api.GET("/products/:id", d.Products.GetProduct)
	api.GET("/categories", d.Categories.ListCategories)

	// Bearer token required
	authed := api.Group("", Authenticate(d.Users, d.Secret))
	{
		authed.GET("/auth/profile", d.Auth.GetProfile)
		authed.PUT("/auth/profile", d.Auth.UpdateProfile)

		authed.GET("/cart", d.Cart.GetCart)
		authed.POST("/cart/add", d.Cart.AddToCart)
		authed.PUT("/cart/update", d.Cart.UpdateCart)
		authed.DELETE("/cart/remove/:productId", d.Cart.RemoveFromCart)
		authed.DELETE("/cart/clear", d.Cart.ClearCart)

		authed.GET("/wishlist", d.Wishlist.GetWishlist)
		authed.POST("/wishlist/add", d.Wishlist.AddToWishlist)
		authed.DELETE("/wishlist/remove/:productId", d.Wishlist.RemoveFromWishlist)

		authed.POST("/orders/create", d.Orders.CreateOrder)
		authed.GET("/orders", d.Orders.ListOrders)
	}

	// Admin token required
	admin := api.Group("/admin", Authenticate(d.Users, d.Secret), RequireAdmin())
	{
		admin.POST("/products", d.Products.CreateProduct)
		admin.PUT("/products/:id", d.Products.UpdateProduct)
		admin.DELETE("/products/:id", d.Products.DeleteProduct)
		admin.POST("/products/:id/images", d.Products.UploadImage)

		admin.GET("/orders", d.Orders.ListAllOrders)
		admin.PUT("/orders/:id/status", d.Orders.UpdateOrderStatus)

		admin.POST("/categories", d.Categories.CreateCategory)
	}

	r.Static("/uploads", d.UploadDir)

	return r
}
