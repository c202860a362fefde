package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"musclesaction-store/internal/domain"
	"musclesaction-store/internal/pricing"
	catalogsvc "musclesaction-store/internal/service/catalog"
	checkoutsvc "musclesaction-store/internal/service/checkout"
	"musclesaction-store/pkg/httpmiddleware"
)

// Deps carries the services the router dispatches to.
type Deps struct {
	Catalog  CatalogService
	Cart     CartService
	Checkout CheckoutService
	Admin    AdminService
}

// Options tunes the cross-cutting middleware.
type Options struct {
	CORSOrigins     []string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

type CatalogService interface {
	List(ctx context.Context, f catalogsvc.Filter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Offers(ctx context.Context) ([]catalogsvc.OfferView, error)
}

type CartService interface {
	Get(ctx context.Context, token string) (domain.CartLines, error)
	AddItem(ctx context.Context, token, productID, flavor string, qty int) (domain.CartLines, error)
	UpdateQuantity(ctx context.Context, token, productID string, qty int) (domain.CartLines, error)
	RemoveItem(ctx context.Context, token, productID string) (domain.CartLines, error)
	Clear(ctx context.Context, token string) error
}

type CheckoutService interface {
	ApplyCoupon(ctx context.Context, token, code string) (*pricing.Quote, *domain.Coupon, error)
	PlaceOrder(ctx context.Context, token string, in checkoutsvc.PlaceOrderInput) (*domain.Order, error)
}

type AdminService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error

	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListOffers(ctx context.Context) ([]domain.Offer, error)
	CreateOffer(ctx context.Context, o domain.Offer) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, o domain.Offer) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, id string) error

	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
	CreateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	UpdateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error

	ListOrders(ctx context.Context) ([]domain.Order, error)
	ConfirmOrder(ctx context.Context, id string) error
	DeliverOrder(ctx context.Context, id string) error
	DeleteOrder(ctx context.Context, id string) error
	OrderStats(ctx context.Context) (*domain.OrderStats, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(httpmiddleware.RequestID())
	if opts.RateLimitMax > 0 {
		router.Use(httpmiddleware.RateLimit(httpmiddleware.RateLimitConfig{
			Max:    opts.RateLimitMax,
			Window: opts.RateLimitWindow,
		}))
	}
	router.Use(cors.New(corsConfig(opts.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Catalog))
		api.GET("/products/:id", getProductHandler(deps.Catalog))
		api.GET("/categories", categoriesHandler)
		api.GET("/offers", offersHandler(deps.Catalog))

		api.GET("/cart", getCartHandler(deps.Cart))
		api.DELETE("/cart", clearCartHandler(deps.Cart))
		api.POST("/cart/items", addCartItemHandler(deps.Cart))
		api.PATCH("/cart/items/:productId", updateCartItemHandler(deps.Cart))
		api.DELETE("/cart/items/:productId", removeCartItemHandler(deps.Cart))

		api.POST("/cart/coupon", applyCouponHandler(deps.Checkout))
		api.POST("/checkout", checkoutHandler(deps.Checkout))

		admin := api.Group("/admin")
		admin.POST("/login", adminLoginHandler(deps.Admin))
		authed := admin.Group("", requireAdmin(deps.Admin))
		{
			authed.POST("/logout", adminLogoutHandler(deps.Admin))

			authed.GET("/products", adminListProductsHandler(deps.Admin))
			authed.POST("/products", adminCreateProductHandler(deps.Admin))
			authed.PUT("/products/:id", adminUpdateProductHandler(deps.Admin))
			authed.DELETE("/products/:id", adminDeleteProductHandler(deps.Admin))

			authed.GET("/offers", adminListOffersHandler(deps.Admin))
			authed.POST("/offers", adminCreateOfferHandler(deps.Admin))
			authed.PUT("/offers/:id", adminUpdateOfferHandler(deps.Admin))
			authed.DELETE("/offers/:id", adminDeleteOfferHandler(deps.Admin))

			authed.GET("/coupons", adminListCouponsHandler(deps.Admin))
			authed.POST("/coupons", adminCreateCouponHandler(deps.Admin))
			authed.PUT("/coupons/:id", adminUpdateCouponHandler(deps.Admin))
			authed.DELETE("/coupons/:id", adminDeleteCouponHandler(deps.Admin))

			authed.GET("/orders", adminListOrdersHandler(deps.Admin))
			authed.POST("/orders/:id/confirm", adminConfirmOrderHandler(deps.Admin))
			authed.POST("/orders/:id/deliver", adminDeliverOrderHandler(deps.Admin))
			authed.DELETE("/orders/:id", adminDeleteOrderHandler(deps.Admin))

			authed.GET("/stats", adminStatsHandler(deps.Admin))
		}
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Cart-Token", "X-Request-ID"}
	cfg.ExposeHeaders = []string{"X-Cart-Token", "X-Request-ID"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
