package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitormoschetta/viajeia/internal/model"
)

func TestAppendHistoryMantemUltimasDez(t *testing.T) {
	sm := NewSessionManager()

	for i := 0; i < 15; i++ {
		sm.AppendHistory("s1", model.HistoryEntry{Pregunta: fmt.Sprintf("pregunta %d", i)})
	}

	history := sm.History("s1")
	require.Len(t, history, 10)
	// as 10 mais recentes, na ordem relativa original
	assert.Equal(t, "pregunta 5", history[0].Pregunta)
	assert.Equal(t, "pregunta 14", history[9].Pregunta)
}

func TestHistorySessaoDesconhecidaEhVazia(t *testing.T) {
	sm := NewSessionManager()
	assert.Empty(t, sm.History("nadie"))
}

func TestHistoryDevolveCopia(t *testing.T) {
	sm := NewSessionManager()
	sm.AppendHistory("s1", model.HistoryEntry{Pregunta: "original"})

	history := sm.History("s1")
	history[0].Pregunta = "mutada"

	assert.Equal(t, "original", sm.History("s1")[0].Pregunta)
}

func TestAddFavoriteEhIdempotente(t *testing.T) {
	sm := NewSessionManager()

	sm.AddFavorite("s1", "Paris")
	sm.AddFavorite("s1", "Roma")
	favorites := sm.AddFavorite("s1", "Paris")

	assert.Equal(t, []string{"Paris", "Roma"}, favorites)
	assert.Equal(t, []string{"Paris", "Roma"}, sm.Favorites("s1"))
}

func TestFavoritesSessaoDesconhecidaEhVazia(t *testing.T) {
	sm := NewSessionManager()
	assert.Empty(t, sm.Favorites("nadie"))
}

func TestSessoesNaoCompartilhamEstado(t *testing.T) {
	sm := NewSessionManager()
	sm.AppendHistory("s1", model.HistoryEntry{Pregunta: "hola"})
	sm.AddFavorite("s1", "Paris")

	assert.Empty(t, sm.History("s2"))
	assert.Empty(t, sm.Favorites("s2"))
}
