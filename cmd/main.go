package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/vitormoschetta/viajeia/internal/config"
	"github.com/vitormoschetta/viajeia/internal/handler"
	"github.com/vitormoschetta/viajeia/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Load()

	// Criar servidor
	srv, err := server.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Criar handlers e configurar rotas
	h := handler.NewHandler(srv)
	srv.SetupRouter(
		h.HandleHealth,
		h.HandlePlan,
		h.HandleListFavorites,
		h.HandleSaveFavorite,
		h.HandleItineraryPDF,
	)

	// Iniciar servidor
	srv.Start(ctx)
}
