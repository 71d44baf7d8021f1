package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/vitormoschetta/viajeia/internal/extract"
	"github.com/vitormoschetta/viajeia/internal/model"
	"github.com/vitormoschetta/viajeia/internal/panel"
	"github.com/vitormoschetta/viajeia/internal/pdf"
	"github.com/vitormoschetta/viajeia/internal/server"
)

// Handler contém as dependências necessárias para os handlers HTTP
type Handler struct {
	server *server.Server
}

// NewHandler cria uma nova instância do Handler
func NewHandler(srv *server.Server) *Handler {
	return &Handler{server: srv}
}

// HandleHealth retorna o status de saúde do servidor
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "ViajeIA backend listo",
	})
}

// HandlePlan processa um turno de conversa: extrai o destino da pergunta,
// consulta os provedores, chama o modelo e atualiza o histórico da sessão.
func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	var req model.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		sendError(w, http.StatusBadRequest, "Formato JSON inválido.")
		return
	}
	defer r.Body.Close()

	if h.server.Gemini == nil {
		sendError(w, http.StatusInternalServerError, "Falta la variable de entorno GEMINI_API_KEY o GOOGLE_API_KEY.")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "anon"
	}
	history := h.server.Sessions.History(sessionID)

	destino, ok := extract.Destino(req.Pregunta)
	if !ok && len(history) > 0 {
		destino = history[len(history)-1].Destino
	}

	ctx := r.Context()

	// As fotos não dependem de nada e correm em paralelo com a cadeia
	// clima -> moeda do país -> cotação.
	photosCh := make(chan []string, 1)
	go func() {
		photosCh <- h.server.Photos.Fetch(ctx, destino)
	}()

	weather := h.server.Weather.Fetch(ctx, destino)

	var countryCode string
	var offsetSeconds *int
	if weather != nil {
		countryCode = weather.Country
		offsetSeconds = weather.TimezoneOffset
	}
	currencyCode := h.server.Currency.Fetch(ctx, countryCode)
	currencySection := h.server.Rates.Fetch(ctx, currencyCode)
	timeSection := panel.TimeDifference(offsetSeconds, h.server.Config.HomeTimezone)
	weatherSection := panel.Weather(weather)

	fotos := <-photosCh
	if fotos == nil {
		fotos = []string{}
	}

	log.Printf("Processing message in session %s: %s", sessionID, req.Pregunta)

	respuesta, err := h.server.Gemini.Generate(ctx, buildPrompt(req.Pregunta, destino, history, weather))
	if err != nil {
		log.Printf("Error generating response: %v", err)
		sendError(w, http.StatusBadGateway, fmt.Sprintf("No pudimos obtener la recomendación de Gemini: %v", err))
		return
	}
	if respuesta == "" {
		respuesta = "No recibimos una respuesta clara, intenta describir un poco más tu viaje."
	}

	entry := model.HistoryEntry{
		Pregunta:  req.Pregunta,
		Respuesta: respuesta,
		Destino:   destino,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	updated := h.server.Sessions.AppendHistory(sessionID, entry)

	sendJSON(w, http.StatusOK, model.PlanResponse{
		Respuesta: respuesta,
		Fotos:     fotos,
		Panel: &model.PanelInfo{
			Currency: currencySection,
			Time:     timeSection,
			Weather:  weatherSection,
		},
		History:   updated,
		Favorites: h.server.Sessions.Favorites(sessionID),
	})
}

// HandleListFavorites devolve os destinos favoritos da sessão informada
func (h *Handler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	sendJSON(w, http.StatusOK, model.FavoritesResponse{
		Favorites: h.server.Sessions.Favorites(sessionID),
	})
}

// HandleSaveFavorite inclui um destino nos favoritos da sessão
func (h *Handler) HandleSaveFavorite(w http.ResponseWriter, r *http.Request) {
	var req model.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		sendError(w, http.StatusBadRequest, "Formato JSON inválido.")
		return
	}
	defer r.Body.Close()

	sessionID := strings.TrimSpace(req.SessionID)
	destino := strings.TrimSpace(req.Destino)
	if sessionID == "" || destino == "" {
		sendError(w, http.StatusBadRequest, "session_id y destino son obligatorios.")
		return
	}

	sendJSON(w, http.StatusOK, model.FavoritesResponse{
		Favorites: h.server.Sessions.AddFavorite(sessionID, destino),
	})
}

// HandleItineraryPDF gera e devolve o PDF do itinerário da sessão
func (h *Handler) HandleItineraryPDF(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	history := h.server.Sessions.History(sessionID)
	if len(history) == 0 {
		sendError(w, http.StatusNotFound, "No encontramos una conversación activa para generar el PDF.")
		return
	}

	latest := history[len(history)-1]
	destino := latest.Destino
	if destino == "" {
		destino, _ = extract.Destino(latest.Pregunta)
	}
	if destino == "" {
		destino = "Destino no especificado"
	}
	fechas, ok := extract.Fechas(latest.Pregunta)
	if !ok {
		fechas = "Fechas no definidas"
	}

	// busca fresca, como no /plan; sem credencial a galeria simplesmente sai
	photos := h.server.Photos.Fetch(r.Context(), destino)

	document, err := h.server.Renderer.Render(r.Context(), history, destino, fechas, photos)
	if err != nil {
		if errors.Is(err, pdf.ErrNoHistory) {
			sendError(w, http.StatusNotFound, "No encontramos una conversación activa para generar el PDF.")
			return
		}
		log.Printf("Error rendering itinerary PDF: %v", err)
		sendError(w, http.StatusInternalServerError, "No pudimos generar el PDF del itinerario.")
		return
	}

	shortID := sessionID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	filename := fmt.Sprintf("viajeia-itinerario-%s.pdf", shortID)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(document); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// promptIntro mantém a persona e o formato de resposta exigidos do modelo.
const promptIntro = "Preséntate siempre como 'Alex, tu consultor personal de viajes'. " +
	"Mantén un tono entusiasta y amigable, utiliza emojis relacionados con viajes ✈️ 🌍 🧳. " +
	"Antes de recomendar, incluye 1-2 preguntas para conocer mejor las preferencias " +
	"(presupuesto, intereses, ritmo del viaje). " +
	"La respuesta siempre debe seguir exactamente este formato (usa bullets donde aplique):\n" +
	"🏨 ALOJAMIENTO: ...\n" +
	"🍽️ COMIDA LOCAL: ...\n" +
	"📍 LUGARES IMPERDIBLES: ...\n" +
	"💡 CONSEJOS LOCALES: ...\n" +
	"💰 ESTIMACIÓN DE COSTOS: ...\n" +
	"Si falta información, solicita más detalles dentro de la sección correspondiente. "

// buildPrompt anexa ao prompt base o contexto do viajante, os últimos turnos
// da conversa e, quando disponível, o clima atual do destino.
func buildPrompt(pregunta, destino string, history []model.HistoryEntry, weather *model.WeatherSnapshot) string {
	var b strings.Builder
	b.WriteString(promptIntro)
	b.WriteString("Contexto del viajero: ")
	b.WriteString(pregunta)

	if len(history) > 0 {
		recent := history
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		b.WriteString("\nHistorial reciente:\n")
		for _, entry := range recent {
			fmt.Fprintf(&b, "- Pregunta: %s\n  Respuesta previa: %s\n", entry.Pregunta, entry.Respuesta)
		}
	}

	if weather != nil && destino != "" {
		var bits []string
		if weather.Summary != "" {
			bits = append(bits, weather.Summary)
		}
		if weather.Temperature != nil {
			bits = append(bits, fmt.Sprintf("%.0f °C", *weather.Temperature))
		}
		if weather.Humidity != nil {
			bits = append(bits, fmt.Sprintf("Humedad %d%%", *weather.Humidity))
		}
		if len(bits) > 0 {
			fmt.Fprintf(&b, "\nInformación de clima actual para %s: %s", destino, strings.Join(bits, ", "))
		}
	}

	return b.String()
}

// Funções auxiliares de resposta
func sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func sendError(w http.ResponseWriter, status int, detail string) {
	sendJSON(w, status, model.ErrorResponse{Detail: detail})
}
