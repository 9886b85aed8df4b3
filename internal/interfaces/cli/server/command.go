package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	authUC "github.com/manideepv28/CustomerSupportPortal/internal/application/auth/usecases"
	chatUC "github.com/manideepv28/CustomerSupportPortal/internal/application/chat/usecases"
	faqUC "github.com/manideepv28/CustomerSupportPortal/internal/application/faq/usecases"
	ticketUC "github.com/manideepv28/CustomerSupportPortal/internal/application/ticket/usecases"
	userUC "github.com/manideepv28/CustomerSupportPortal/internal/application/user/usecases"
	infraauth "github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/auth"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/config"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/database"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/migrations"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/repository"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/seed"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/services"
	httpRouter "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http"
	authhandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/auth"
	chathandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/chat"
	faqhandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/faq"
	tickethandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/ticket"
	userhandler "github.com/manideepv28/CustomerSupportPortal/internal/interfaces/http/handlers/user"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/services/markdown"
)

var (
	env      string
	skipSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the support portal HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Skip seeding demo data on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting server",
		"environment", env,
		"mode", cfg.Server.Mode)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	db := database.Get()

	if err := migrations.MigratePortalTables(db); err != nil {
		logger.Fatal("failed to migrate database", "error", err)
	}

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)

	if cfg.Seed.Enabled && !skipSeed {
		if err := seed.Run(cmd.Context(), db, hasher); err != nil {
			logger.Fatal("failed to seed database", "error", err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	chatRepo := repository.NewChatMessageRepository(db)
	codeGen := services.NewTicketCodeGenerator(db)
	markdownSvc := markdown.NewService()
	log := logger.NewLogger()

	handlers := &httpRouter.Handlers{
		Auth: authhandler.NewHandler(
			authUC.NewRegisterUseCase(userRepo, hasher, log),
			authUC.NewLoginUseCase(userRepo, hasher, log),
		),
		User: userhandler.NewHandler(
			userUC.NewGetUserUseCase(userRepo),
			userUC.NewUpdateUserUseCase(userRepo, hasher, log),
		),
		Ticket: tickethandler.NewHandler(
			ticketUC.NewCreateTicketUseCase(ticketRepo, codeGen, log),
			ticketUC.NewUpdateTicketUseCase(ticketRepo, log),
			ticketUC.NewGetTicketUseCase(ticketRepo),
			ticketUC.NewGetTicketByCodeUseCase(ticketRepo),
			ticketUC.NewListTicketsUseCase(ticketRepo),
			ticketUC.NewAddReplyUseCase(ticketRepo, replyRepo, log),
			ticketUC.NewListRepliesUseCase(replyRepo),
		),
		FAQ: faqhandler.NewHandler(
			faqUC.NewListFAQsUseCase(faqRepo),
			markdownSvc,
		),
		Chat: chathandler.NewHandler(
			chatUC.NewSendMessageUseCase(chatRepo, log),
			chatUC.NewGetHistoryUseCase(chatRepo),
		),
	}

	engine := httpRouter.NewRouter(&cfg.Server, handlers)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
