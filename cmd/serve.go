package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"glutivia/internal/config"
	"glutivia/internal/genai"
	httpapi "glutivia/internal/http"
	"glutivia/internal/kv"
	"glutivia/internal/repository"
	"glutivia/internal/service"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, store, cleanup, err := bootstrap(ctx, *configPath)
			if err != nil {
				return err
			}
			defer cleanup()
			return serve(ctx, cfg, store)
		},
	}
}

func newServer(cfg *config.Config, store kv.Store) *httpapi.Server {
	locker := repository.NewLocker()
	catalog := repository.NewSeededCatalog()
	carts := repository.NewCarts(locker, store)
	orders := repository.NewOrderStore(locker, store)
	sessions := repository.NewSessionStore(locker, store)
	community := repository.NewCommunityStore(locker, store, repository.CommunityOptions{})

	gemini := genai.NewClient(genai.Config{
		APIKey:     cfg.Gemini.APIKey,
		BaseURL:    cfg.Gemini.BaseURL,
		TextModel:  cfg.Gemini.TextModel,
		ImageModel: cfg.Gemini.ImageModel,
		Timeout:    cfg.Gemini.Timeout,
	})
	if cfg.Gemini.APIKey == "" {
		zap.S().Warn("gemini api key is not set; kitchen endpoints will fail")
	}

	svc := httpapi.Services{
		Products: service.NewProductService(catalog),
		Meals:    service.NewMealService(catalog.Meals()),
		Auth: service.NewAuthService(sessions, service.AuthConfig{
			LoginDelay: cfg.Checkout.LoginDelay,
			PlanDelay:  cfg.Checkout.PlanDelay,
		}),
		Carts: service.NewCartService(carts, catalog, catalog.Meals()),
		Checkout: service.NewCheckoutService(carts, orders, repository.NewLockTx(locker), service.CheckoutConfig{
			CardDelay: cfg.Checkout.CardDelay,
			CODDelay:  cfg.Checkout.CODDelay,
		}),
		Community: service.NewCommunityService(community),
		Admin:     service.NewAdminService(cfg.Admin.Username, cfg.Admin.Password, orders),
		Kitchen:   service.NewKitchenService(gemini, catalog.Recipes()),
	}
	return httpapi.NewServer(svc, httpapi.Options{
		CookieName:   cfg.Session.CookieName,
		AdminSecret:  cfg.Session.AdminSecret,
		AdminMaxAge:  cfg.Session.AdminMaxAge,
		SecureCookie: cfg.Session.SecureCookie,
		Swagger:      cfg.Server.Swagger,
	})
}

func serve(ctx context.Context, cfg *config.Config, store kv.Store) error {
	if cfg.Logger.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: newServer(cfg, store).Engine(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.S().Infow("HTTP server listening", "addr", httpServer.Addr, "storage", cfg.Storage.Backend)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		zap.S().Info("shutting down HTTP server")
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
