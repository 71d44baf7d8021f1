package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitormoschetta/viajeia/internal/model"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestWeatherSemSnapshotNaoEmiteSecao(t *testing.T) {
	assert.Nil(t, Weather(nil))
}

func TestWeatherSecaoCompleta(t *testing.T) {
	section := Weather(&model.WeatherSnapshot{
		Summary:     "Cielo claro",
		Temperature: floatPtr(21.6),
		FeelsLike:   floatPtr(23.4),
		Humidity:    intPtr(60),
	})

	require.NotNil(t, section)
	assert.Equal(t, "Temperatura actual", section.Label)
	assert.Equal(t, "22 °C", section.Value)
	assert.Equal(t, "Cielo claro. Sensación 23 °C. Humedad 60%", section.Description)
}

func TestWeatherSemTemperaturaCaiParaResumo(t *testing.T) {
	section := Weather(&model.WeatherSnapshot{Summary: "Lluvia ligera"})

	require.NotNil(t, section)
	assert.Equal(t, "Lluvia ligera", section.Value)
	assert.Equal(t, "Lluvia ligera", section.Description)
}

func TestWeatherSemDadosUsaND(t *testing.T) {
	section := Weather(&model.WeatherSnapshot{})

	require.NotNil(t, section)
	assert.Equal(t, "N/D", section.Value)
	assert.Empty(t, section.Description)
}

func TestTimeDifferenceSemOffsetNaoEmiteSecao(t *testing.T) {
	assert.Nil(t, TimeDifference(nil, "UTC"))
}

func TestTimeDifferenceContraUTC(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	section := timeDifferenceAt(now, 2*3600, "UTC")
	require.NotNil(t, section)
	assert.Equal(t, "Diferencia horaria", section.Label)
	assert.Equal(t, "+2.0 h", section.Value)
	assert.Equal(t, "Destino 14:00 · tu zona 12:00 (UTC)", section.Description)
}

func TestTimeDifferenceOffsetNegativoEMeio(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	section := timeDifferenceAt(now, -12600, "UTC") // -3h30
	require.NotNil(t, section)
	assert.Equal(t, "-3.5 h", section.Value)
}

func TestTimeDifferenceFusoInvalidoCaiParaUTC(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	section := timeDifferenceAt(now, -3*3600, "Marte/Cráter")
	require.NotNil(t, section)
	assert.Equal(t, "-3.0 h", section.Value)
	assert.Contains(t, section.Description, "(UTC)")
}
