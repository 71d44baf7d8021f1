package provider

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"unicode"
	"unicode/utf8"

	"github.com/vitormoschetta/viajeia/internal/model"
)

// openWeatherResponse espelha o subconjunto usado da resposta do OpenWeather.
type openWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Timezone *int   `json:"timezone"`
	Name     string `json:"name"`
}

// OpenWeather consulta o clima atual de um destino em unidades métricas.
type OpenWeather struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewOpenWeather(apiKey string) *OpenWeather {
	return &OpenWeather{
		APIKey:  apiKey,
		BaseURL: "https://api.openweathermap.org",
		client:  newHTTPClient(),
	}
}

// Fetch devolve o recorte de clima ou nil. Sem credencial nenhuma chamada é
// feita.
func (p *OpenWeather) Fetch(ctx context.Context, destino string) *model.WeatherSnapshot {
	if p.APIKey == "" || destino == "" {
		return nil
	}

	params := url.Values{}
	params.Set("q", destino)
	params.Set("appid", p.APIKey)
	params.Set("units", "metric")
	params.Set("lang", "es")

	var data openWeatherResponse
	if err := getJSON(ctx, p.client, p.BaseURL+"/data/2.5/weather?"+params.Encode(), nil, &data); err != nil {
		log.Printf("OpenWeather indisponível para %q: %v", destino, err)
		return nil
	}

	snapshot := &model.WeatherSnapshot{
		Temperature:    data.Main.Temp,
		FeelsLike:      data.Main.FeelsLike,
		Humidity:       data.Main.Humidity,
		Wind:           data.Wind.Speed,
		Country:        data.Sys.Country,
		TimezoneOffset: data.Timezone,
		City:           data.Name,
	}
	if len(data.Weather) > 0 {
		snapshot.Summary = capitalize(data.Weather[0].Description)
	}
	if snapshot.City == "" {
		snapshot.City = destino
	}
	return snapshot
}

// capitalize põe a primeira runa em maiúscula ("cielo claro" -> "Cielo claro").
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
