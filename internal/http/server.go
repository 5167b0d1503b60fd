package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"glutivia/internal/service"
)

// Services всё, что нужно обработчикам
type Services struct {
	Products  *service.ProductService
	Meals     *service.MealService
	Auth      *service.AuthService
	Carts     *service.CartService
	Checkout  *service.CheckoutService
	Community *service.CommunityService
	Admin     *service.AdminService
	Kitchen   *service.KitchenService
}

// Options параметры cookie и документации
type Options struct {
	CookieName   string
	AdminSecret  string
	AdminMaxAge  time.Duration
	SecureCookie bool
	Swagger      bool
}

type Server struct {
	engine *gin.Engine
	svc    Services
	opts   Options
	admin  *sessions.CookieStore
}

func NewServer(svc Services, opts Options) *Server {
	if opts.CookieName == "" {
		opts.CookieName = "glutivia_session"
	}
	store := sessions.NewCookieStore([]byte(opts.AdminSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.AdminMaxAge / time.Second),
		HttpOnly: true,
		Secure:   opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}

	r := gin.New()
	// handlers pass *gin.Context as context.Context; let it see request cancellation
	r.ContextWithFallback = true
	r.Use(requestLogger(), gin.Recovery())
	s := &Server{engine: r, svc: svc, opts: opts, admin: store}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	if s.opts.Swagger {
		s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)
		products.POST("", s.requireAdmin(), s.createProduct)
		products.PUT(":id", s.requireAdmin(), s.updateProduct)
		products.DELETE(":id", s.requireAdmin(), s.deleteProduct)

		meals := v1.Group("/meals", s.requireCustomer())
		meals.GET("", s.listMeals)
		meals.GET(":id", s.getMeal)

		auth := v1.Group("/auth")
		auth.POST("/login", s.login)
		auth.POST("/register", s.register)
		auth.POST("/logout", s.logout)

		profile := v1.Group("/profile", s.requireCustomer())
		profile.GET("", s.getProfile)
		profile.POST("/password", s.changePassword)
		profile.POST("/plan", s.activatePlan)

		cart := v1.Group("/cart", s.requireCustomer())
		cart.GET("", s.getCart)
		cart.DELETE("", s.clearCart)
		cart.POST("/items", s.addCartItem)
		cart.DELETE("/items/:id", s.removeCartItem)

		co := v1.Group("/checkout", s.requireCustomer())
		co.GET("", s.getCheckout)
		co.POST("/begin", s.beginCheckout)
		co.POST("/customer-info", s.submitCustomerInfo)
		co.POST("/payment-method", s.choosePaymentMethod)
		co.POST("/card", s.submitCard)
		co.POST("/cod", s.confirmCOD)
		co.POST("/back", s.checkoutBack)
		co.POST("/cancel", s.cancelCheckout)
		co.POST("/reset", s.resetCheckout)

		community := v1.Group("/community/messages")
		community.GET("", s.listMessages)
		community.POST("", s.requireCustomer(), s.postMessage)
		community.DELETE(":id", s.requireCustomer(), s.deleteMessage)

		kitchen := v1.Group("/kitchen", s.optionalCustomer())
		kitchen.GET("/featured", s.listFeatured)
		kitchen.POST("/recipes", s.generateRecipe)
		kitchen.POST("/images", s.generateImage)
		kitchen.POST("/product-images", s.requireAdmin(), s.generateProductImage)

		admin := v1.Group("/admin")
		admin.POST("/login", s.adminLogin)
		admin.POST("/logout", s.adminLogout)
		admin.GET("/orders", s.requireAdmin(), s.listOrders)
	}
}
