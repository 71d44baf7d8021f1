// Package provider contém os adaptadores HTTP para as fontes externas de
// dados: clima (OpenWeather), fotos (Unsplash), moeda por país (RESTCountries)
// e cotação (open.er-api.com). Nenhum adaptador propaga erro: credencial
// ausente, falha de rede, status não-2xx ou payload inválido degradam para um
// resultado ausente e a requisição segue sem aquela informação.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vitormoschetta/viajeia/internal/model"
)

// Timeout aplicado a toda chamada externa. Uma chamada lenta nunca segura a
// requisição além do próprio timeout.
const Timeout = 8 * time.Second

// WeatherProvider devolve o clima atual de um destino, ou nil.
type WeatherProvider interface {
	Fetch(ctx context.Context, destino string) *model.WeatherSnapshot
}

// PhotoProvider devolve até 3 URLs de fotos de um destino.
type PhotoProvider interface {
	Fetch(ctx context.Context, destino string) []string
}

// CurrencyProvider resolve a moeda principal de um país (código ISO), ou "".
type CurrencyProvider interface {
	Fetch(ctx context.Context, countryCode string) string
}

// RateProvider monta a seção de câmbio para a moeda do destino, ou nil.
type RateProvider interface {
	Fetch(ctx context.Context, targetCurrency string) *model.PanelSection
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: Timeout}
}

// getJSON executa um GET e decodifica o corpo JSON em out. Os adaptadores
// traduzem qualquer erro daqui para "ausente".
func getJSON(ctx context.Context, client *http.Client, url string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("status inesperado %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
