package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/vitormoschetta/viajeia/internal/config"
	"github.com/vitormoschetta/viajeia/internal/gemini"
	"github.com/vitormoschetta/viajeia/internal/pdf"
	"github.com/vitormoschetta/viajeia/internal/provider"
	"github.com/vitormoschetta/viajeia/internal/service"
)

// Server agrega as dependências compartilhadas pelos handlers HTTP.
type Server struct {
	Config   *config.Config
	Gemini   gemini.Generator // nil quando a credencial não está configurada
	Weather  provider.WeatherProvider
	Photos   provider.PhotoProvider
	Currency provider.CurrencyProvider
	Rates    provider.RateProvider
	Sessions *service.SessionManager
	Renderer *pdf.Renderer
	Router   chi.Router
}

// NewServer monta o servidor a partir da configuração de ambiente. Provedores
// sem credencial continuam registrados e degradam para "ausente" por conta
// própria; só a credencial do Gemini muda o comportamento do /plan.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	s := &Server{
		Config:   cfg,
		Weather:  provider.NewOpenWeather(cfg.OpenWeatherKey),
		Photos:   provider.NewUnsplash(cfg.UnsplashKey),
		Currency: provider.NewRESTCountries(),
		Rates:    provider.NewExchangeRate(cfg.HomeCurrency),
		Sessions: service.NewSessionManager(),
		Renderer: pdf.NewRenderer(),
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY/GOOGLE_API_KEY não configurada - /plan responderá 500")
	} else {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create model: %w", err)
		}
		s.Gemini = client
	}

	if cfg.OpenWeatherKey == "" {
		log.Println("Warning: OPENWEATHER_API_KEY não configurada - painel de clima desabilitado")
	}
	if cfg.UnsplashKey == "" {
		log.Println("Warning: UNSPLASH_ACCESS_KEY não configurada - fotos desabilitadas")
	}

	return s, nil
}

// SetupRouter configura as rotas e middlewares do Chi
func (s *Server) SetupRouter(
	handleHealth http.HandlerFunc,
	handlePlan http.HandlerFunc,
	handleListFavorites http.HandlerFunc,
	handleSaveFavorite http.HandlerFunc,
	handleItineraryPDF http.HandlerFunc,
) {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"http://localhost:8000",
			"http://127.0.0.1:8000",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Rotas
	r.Get("/api/health", handleHealth)
	r.Post("/plan", handlePlan)
	r.Get("/favorites", handleListFavorites)
	r.Post("/favorites", handleSaveFavorite)
	r.Get("/itinerary/pdf", handleItineraryPDF)

	s.mountFrontend(r)

	s.Router = r
}

// mountFrontend serve o bundle estático do frontend, quando existir.
func (s *Server) mountFrontend(r chi.Router) {
	dist := s.Config.FrontendDist

	assets := filepath.Join(dist, "assets")
	if _, err := os.Stat(assets); err == nil {
		fileServer := http.StripPrefix("/assets/", http.FileServer(http.Dir(assets)))
		r.Handle("/assets/*", fileServer)
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		index := filepath.Join(dist, "index.html")
		if _, err := os.Stat(index); err != nil {
			http.Error(w, "Build de frontend no encontrado. Ejecuta `npm run build` en frontend.", http.StatusServiceUnavailable)
			return
		}
		http.ServeFile(w, req, index)
	})
}

// Start inicia o servidor HTTP com graceful shutdown
func (s *Server) Start(ctx context.Context) {
	httpServer := &http.Server{
		Addr:        ":" + s.Config.HTTPPort,
		Handler:     s.Router,
		ReadTimeout: 15 * time.Second,
		// o /plan espera o modelo e os provedores externos dentro da resposta
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Goroutine para iniciar o servidor
	go func() {
		log.Println("╔════════════════════════════════════════════════════╗")
		log.Println("║   ViajeIA API - asistente de viajes                ║")
		log.Println("╚════════════════════════════════════════════════════╝")
		log.Println("")
		log.Printf("🚀 Servidor HTTP iniciado na porta :%s", s.Config.HTTPPort)
		log.Println("📦 Router: Chi")
		log.Println("")
		log.Println("📌 Endpoints disponíveis:")
		log.Printf("   • Plan:      http://localhost:%s/plan (POST)", s.Config.HTTPPort)
		log.Printf("   • Favoritos: http://localhost:%s/favorites (GET/POST)", s.Config.HTTPPort)
		log.Printf("   • PDF:       http://localhost:%s/itinerary/pdf?session_id=... (GET)", s.Config.HTTPPort)
		log.Printf("   • Health:    http://localhost:%s/api/health (GET)", s.Config.HTTPPort)
		log.Println("")
		log.Println("⚠️  Pressione Ctrl+C para parar o servidor")
		log.Println("")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Aguardar sinal de interrupção
	<-ctx.Done()
	log.Println("\n🛑 Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
