package routes

import (
	"wedding-site/config"
	authapi "wedding-site/internal/api/auth"
	"wedding-site/internal/api/dashboard"
	designapi "wedding-site/internal/api/design"
	faqapi "wedding-site/internal/api/faq"
	galleryapi "wedding-site/internal/api/gallery"
	partyapi "wedding-site/internal/api/party"
	publicapi "wedding-site/internal/api/public"
	rsvpapi "wedding-site/internal/api/rsvp"
	sectionsapi "wedding-site/internal/api/sections"
	timelineapi "wedding-site/internal/api/timeline"
	uploadapi "wedding-site/internal/api/upload"
	"wedding-site/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type Deps struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	auth := authapi.NewHandler(d.DB, d.Cfg, d.Log)
	sections := sectionsapi.NewHandler(d.DB, d.Log)
	design := designapi.NewHandler(d.DB, d.Log)
	rsvp := rsvpapi.NewHandler(d.DB, d.Log)
	gallery := galleryapi.NewHandler(d.DB, d.Log)
	party := partyapi.NewHandler(d.DB, d.Log)
	timeline := timelineapi.NewHandler(d.DB, d.Log)
	faq := faqapi.NewHandler(d.DB, d.Log)
	upload := uploadapi.NewHandler(d.Cfg, d.Log)
	site := publicapi.NewHandler(d.DB, d.Log)
	overview := dashboard.NewHandler(d.DB, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.Static("/uploads", d.Cfg.UploadDir)

	// Guests hit these without a session. The RSVP form additionally gets
	// input sanitization and a per-IP rate limit.
	public := r.Group("/api")
	public.POST("/auth/login", auth.Login)
	public.GET("/site", site.Site)
	public.GET("/sections", sections.List)
	public.GET("/sections/:key", sections.Get)
	public.GET("/design", design.List)
	public.GET("/wedding-party", party.List)
	public.GET("/timeline", timeline.List)
	public.GET("/faq", faq.List)

	rsvpLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)
	public.POST("/rsvp",
		middleware.RateLimit(rsvpLimiter),
		middleware.SanitizeJSONBody(),
		rsvp.Submit)

	// Everything the admin panel touches sits behind the session cookie.
	session := r.Group("/api")
	session.Use(middleware.RequireSession(d.Cfg.JWTSecret))

	session.POST("/auth/logout", auth.Logout)
	session.GET("/auth/session", auth.Session)
	session.POST("/auth/change-password", auth.ChangePassword)

	session.PUT("/sections", sections.Update)
	session.PUT("/sections/:key", sections.UpdateByKey)
	session.GET("/sections/:key/schema", sections.GetSchema)

	session.PUT("/design", design.Save)

	session.GET("/rsvp", rsvp.List)
	session.DELETE("/rsvp", rsvp.Delete)

	session.GET("/gallery", gallery.List)
	session.POST("/gallery", gallery.Create)
	session.DELETE("/gallery", gallery.Delete)

	session.PUT("/wedding-party", party.Save)
	session.DELETE("/wedding-party/:id", party.Delete)

	session.PUT("/timeline", timeline.Save)
	session.DELETE("/timeline/:id", timeline.Delete)

	session.GET("/faq/all", faq.ListAll)
	session.POST("/faq", faq.Upsert)
	session.DELETE("/faq/:id", faq.Delete)

	session.POST("/upload", upload.Upload)

	session.GET("/dashboard", overview.Overview)
}
