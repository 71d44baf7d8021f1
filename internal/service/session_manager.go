package service

import (
	"slices"
	"sync"

	"github.com/vitormoschetta/viajeia/internal/model"
)

// maxHistory limita o histórico por sessão às entradas mais recentes.
const maxHistory = 10

// SessionManager guarda, em memória, o histórico de conversa e os destinos
// favoritos de cada sessão. Criado na subida do processo e zerado apenas no
// restart. Requisições de sessões diferentes nunca disputam dados; na mesma
// sessão o append+truncate roda inteiro sob o lock.
type SessionManager struct {
	mu        sync.RWMutex
	histories map[string][]model.HistoryEntry
	favorites map[string][]string
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		histories: make(map[string][]model.HistoryEntry),
		favorites: make(map[string][]string),
	}
}

// AppendHistory acrescenta uma entrada e trunca para as últimas maxHistory,
// descartando primeiro a mais antiga (FIFO). Devolve uma cópia do histórico
// atualizado.
func (sm *SessionManager) AppendHistory(sessionID string, entry model.HistoryEntry) []model.HistoryEntry {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	history := append(sm.histories[sessionID], entry)
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	sm.histories[sessionID] = history
	return copyHistory(history)
}

// History devolve o histórico (≤ maxHistory) da sessão, ou vazio para sessão
// desconhecida. Nunca erro.
func (sm *SessionManager) History(sessionID string) []model.HistoryEntry {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return copyHistory(sm.histories[sessionID])
}

// AddFavorite inclui o destino se ainda não estiver na lista, preservando a
// ordem de inserção, e devolve a lista atualizada.
func (sm *SessionManager) AddFavorite(sessionID, destino string) []string {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	favorites := sm.favorites[sessionID]
	if !slices.Contains(favorites, destino) {
		favorites = append(favorites, destino)
		sm.favorites[sessionID] = favorites
	}
	return copyStrings(favorites)
}

// Favorites devolve os favoritos da sessão, ou vazio para sessão desconhecida.
func (sm *SessionManager) Favorites(sessionID string) []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return copyStrings(sm.favorites[sessionID])
}

// As cópias saem sempre não-nulas para serializar como lista JSON vazia.
func copyHistory(history []model.HistoryEntry) []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(history))
	copy(out, history)
	return out
}

func copyStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
