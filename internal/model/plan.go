package model

// HistoryEntry representa um turno de conversa armazenado na sessão.
// Imutável depois de criado; os timestamps seguem ISO-8601 (UTC).
type HistoryEntry struct {
	Pregunta  string `json:"pregunta"`
	Respuesta string `json:"respuesta,omitempty"`
	Destino   string `json:"destino,omitempty"`
	Timestamp string `json:"timestamp"`
}

// PlanRequest representa a requisição para o endpoint de planejamento
type PlanRequest struct {
	Pregunta  string `json:"pregunta"`
	SessionID string `json:"session_id,omitempty"`
}

// PanelSection é uma unidade pronta para exibição no painel lateral.
// Só é construída quando o dado do provedor foi obtido com sucesso.
type PanelSection struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// PanelInfo agrega as seções opcionais do painel (no máximo uma por categoria).
type PanelInfo struct {
	Currency *PanelSection `json:"currency,omitempty"`
	Time     *PanelSection `json:"time,omitempty"`
	Weather  *PanelSection `json:"weather,omitempty"`
}

// PlanResponse representa a resposta do endpoint de planejamento
type PlanResponse struct {
	Respuesta string         `json:"respuesta"`
	Fotos     []string       `json:"fotos"`
	Panel     *PanelInfo     `json:"panel,omitempty"`
	History   []HistoryEntry `json:"history"`
	Favorites []string       `json:"favorites"`
}

// FavoriteRequest representa a requisição para salvar um destino favorito
type FavoriteRequest struct {
	SessionID string `json:"session_id"`
	Destino   string `json:"destino"`
}

// FavoritesResponse devolve a lista de favoritos de uma sessão
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// ErrorResponse segue o formato de erro {"detail": ...} da API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
