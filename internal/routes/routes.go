package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homevest_backend/internal/database"
	"homevest_backend/internal/handlers"
	"homevest_backend/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Account     *handlers.AccountHandler
	Property    *handlers.PropertyHandler
	Foreclosure *handlers.ForeclosureHandler
	Blog        *handlers.BlogHandler
	Campaign    *handlers.CampaignHandler
	Offer       *handlers.OfferHandler
	Lead        *handlers.LeadHandler
}

// Setup mounts the full /api/v1 surface.
func Setup(
	router *gin.Engine,
	h Handlers,
	authMW *middleware.AuthMiddleware,
	health *database.HealthChecker,
	uploadsPath string,
) {
	api := router.Group("/api/v1")
	api.Use(middleware.DataModeMiddleware(health))

	api.GET("/health", func(c *gin.Context) {
		mode := "live"
		if health.DemoMode(c.Request.Context()) {
			mode = "demo"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data_mode": mode})
	})

	api.Static("/files", uploadsPath)

	// Authentication. The :role segment selects the account table.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/:role/login", h.Auth.Login)
		authGroup.POST("/:role/register", h.Auth.Register)
	}
	api.POST("/password/forgot", h.Auth.ForgotPassword)
	api.POST("/password/reset", h.Auth.ResetPassword)

	// Public, unauthenticated surface.
	public := api.Group("/public")
	{
		public.GET("/properties", h.Property.ListPublic)
		public.GET("/properties/:id", h.Property.GetPublic)
		public.GET("/blogs", h.Blog.ListPublic)
		public.GET("/blogs/:slug", h.Blog.GetPublicBySlug)
		public.GET("/foreclosures/preview", h.Foreclosure.PublicPreview)
		public.POST("/leads", h.Lead.Submit)
	}

	// Investor surface: both investor kinds authenticate here.
	investor := api.Group("/investor", authMW.InvestorAuth())
	{
		investor.GET("/me", h.Auth.Me)
		investor.POST("/logout", h.Auth.Logout)
		investor.GET("/offers", h.Offer.ListMine)
		investor.POST("/offers/:id/withdraw", h.Offer.Withdraw)
	}
	api.GET("/foreclosures", authMW.InvestorAuth(), h.Foreclosure.ListForInvestor)
	api.POST("/properties/:id/offers", authMW.InvestorAuth(), h.Offer.Submit)

	// Partner surface (stateless JWT).
	partner := api.Group("/partner", authMW.PartnerAuth())
	{
		partner.GET("/me", h.Auth.MePartner)
		partner.POST("/logout", h.Auth.Logout)
	}

	// Back office.
	admin := api.Group("/admin", authMW.AdminAuth())
	{
		admin.POST("/logout", h.Auth.Logout)

		admin.GET("/properties", h.Property.ListAdmin)
		admin.POST("/properties", h.Property.Create)
		admin.PUT("/properties/:id", h.Property.Update)
		admin.DELETE("/properties/:id", h.Property.Delete)
		admin.POST("/import/properties", h.Property.ImportFile)

		admin.GET("/foreclosures", h.Foreclosure.ListAdmin)
		admin.POST("/foreclosures", h.Foreclosure.Create)
		admin.PUT("/foreclosures/:id", h.Foreclosure.Update)
		admin.PATCH("/foreclosures/:id/toggle", h.Foreclosure.Toggle)
		admin.DELETE("/foreclosures/:id", h.Foreclosure.Delete)

		admin.GET("/blogs", h.Blog.ListAdmin)
		admin.POST("/blogs", h.Blog.Create)
		admin.PUT("/blogs/:id", h.Blog.Update)
		admin.DELETE("/blogs/:id", h.Blog.Delete)
		admin.POST("/uploads/blog-image", h.Blog.UploadImage)

		admin.GET("/campaigns", h.Campaign.List)
		admin.GET("/campaigns/:id", h.Campaign.Get)
		admin.POST("/campaigns", h.Campaign.Create)
		admin.PUT("/campaigns/:id", h.Campaign.Update)
		admin.DELETE("/campaigns/:id", h.Campaign.Delete)
		admin.POST("/campaigns/:id/send", h.Campaign.Send)

		admin.GET("/offers", h.Offer.ListAdmin)
		admin.POST("/offers/:id/decide", h.Offer.Decide)

		admin.GET("/leads", h.Lead.ListAdmin)
		admin.PATCH("/leads/:id/status", h.Lead.UpdateStatus)

		admin.GET("/investors", h.Account.ListInvestors)
		admin.GET("/investors/:id", h.Account.GetInvestor)
		admin.POST("/investors/:id/subscription", h.Account.GrantSubscription)
		admin.POST("/investors/:id/deactivate", h.Account.DeactivateInvestor)

		admin.GET("/institutional-investors", h.Account.ListInstitutional)
		admin.POST("/institutional-investors/:id/approve", h.Account.ApproveInstitutional)
		admin.POST("/institutional-investors/:id/reject", h.Account.RejectInstitutional)

		admin.GET("/partners", h.Account.ListPartners)
		admin.POST("/partners/:id/approve", h.Account.ApprovePartner)
		admin.POST("/partners/:id/reject", h.Account.RejectPartner)

		admin.GET("/admins", h.Account.ListAdmins)
		admin.POST("/admins", h.Account.CreateAdmin)
	}
}
