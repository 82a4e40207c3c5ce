package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/castlegate/chess-backend/internal/controller"
	"github.com/castlegate/chess-backend/internal/middleware"
	"github.com/castlegate/chess-backend/internal/service"
)

func main() {
	addr := flag.String("addr", getenv("CHESSD_ADDR", ":3000"), "listen address")
	origins := flag.String("origins", getenv("CHESSD_ORIGINS", "http://localhost:5173"), "allowed CORS origins")
	pretty := flag.Bool("pretty", false, "human-readable log output")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: *origins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))

	rules := service.NewRulesService()
	rulesController := controller.NewRulesController(rules, logger)
	wsController := controller.NewWebSocketController(rules, logger)

	api := app.Group("/api")
	chessRoutes := api.Group("/chess")
	chessRoutes.Get("/legal_moves", rulesController.GetLegalMoves)
	chessRoutes.Post("/move", rulesController.MakeMove)

	app.Use("/ws", middleware.WebSocketUpgrade())
	app.Get("/ws/play", websocket.New(wsController.HandlePlay))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", *addr).Msg("listening")
		return app.Listen(*addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
