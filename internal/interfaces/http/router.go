package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/auth"
	chathandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/chat"
	faqhandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/faq"
	tickethandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/ticket"
	userhandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/user"
	"github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/middleware"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/config"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth   *authhandler.Handler
	User   *userhandler.Handler
	Ticket *tickethandler.Handler
	FAQ    *faqhandler.Handler
	Chat   *chathandler.Handler
}

// NewRouter builds the Gin engine with the full middleware chain and all
// API routes mounted under /api.
func NewRouter(cfg *config.ServerConfig, h *Handlers) *gin.Engine {
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(logger.NewLogger()))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", h.User.GetUser)
			users.PUT("/:id", h.User.UpdateUser)
		}

		tickets := api.Group("/tickets")
		{
			tickets.GET("", h.Ticket.ListTickets)
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.GET("/by-ticket-id/:code", h.Ticket.GetTicketByCode)
			tickets.GET("/:id", h.Ticket.GetTicket)
			tickets.PUT("/:id", h.Ticket.UpdateTicket)
			tickets.GET("/:id/replies", h.Ticket.ListReplies)
			tickets.POST("/:id/replies", h.Ticket.AddReply)
		}

		api.GET("/faqs", h.FAQ.ListFAQs)

		chatGroup := api.Group("/chat")
		{
			chatGroup.POST("", h.Chat.SendMessage)
			chatGroup.GET("/:userId", h.Chat.GetHistory)
		}
	}

	return engine
}
