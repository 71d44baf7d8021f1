// Package panel monta as seções do painel lateral (clima, fuso e câmbio) a
// partir dos dados já coletados. Uma seção só existe quando o dado de origem
// foi obtido; nunca é emitido um placeholder com valores inventados.
package panel

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vitormoschetta/viajeia/internal/model"
)

// Weather monta a seção de temperatura atual. Devolve nil sem snapshot.
func Weather(w *model.WeatherSnapshot) *model.PanelSection {
	if w == nil {
		return nil
	}

	value := "N/D"
	switch {
	case w.Temperature != nil:
		value = fmt.Sprintf("%.0f °C", *w.Temperature)
	case w.Summary != "":
		value = w.Summary
	}

	var parts []string
	if w.Summary != "" {
		parts = append(parts, w.Summary)
	}
	if w.FeelsLike != nil {
		parts = append(parts, fmt.Sprintf("Sensación %.0f °C", *w.FeelsLike))
	}
	if w.Humidity != nil {
		parts = append(parts, fmt.Sprintf("Humedad %d%%", *w.Humidity))
	}

	return &model.PanelSection{
		Label:       "Temperatura actual",
		Value:       value,
		Description: strings.Join(parts, ". "),
	}
}

// TimeDifference calcula a diferença horária entre o destino (offset UTC em
// segundos) e o fuso do viajante. Fuso inválido cai silenciosamente para UTC.
func TimeDifference(offsetSeconds *int, homeTimezone string) *model.PanelSection {
	if offsetSeconds == nil {
		return nil
	}
	return timeDifferenceAt(time.Now(), *offsetSeconds, homeTimezone)
}

func timeDifferenceAt(now time.Time, offsetSeconds int, homeTimezone string) *model.PanelSection {
	if homeTimezone == "" {
		homeTimezone = "UTC"
	}
	homeLoc, err := time.LoadLocation(homeTimezone)
	if err != nil {
		homeLoc = time.UTC
		homeTimezone = "UTC"
	}

	homeNow := now.In(homeLoc)
	_, homeOffset := homeNow.Zone()

	destNow := now.In(time.FixedZone("destino", offsetSeconds))

	diffHours := float64(offsetSeconds-homeOffset) / 3600
	sign := "+"
	if diffHours < 0 {
		sign = "-"
	}

	return &model.PanelSection{
		Label: "Diferencia horaria",
		Value: fmt.Sprintf("%s%.1f h", sign, math.Abs(diffHours)),
		Description: fmt.Sprintf("Destino %s · tu zona %s (%s)",
			destNow.Format("15:04"), homeNow.Format("15:04"), homeTimezone),
	}
}
