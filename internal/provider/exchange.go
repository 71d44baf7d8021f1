package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vitormoschetta/viajeia/internal/model"
)

// ExchangeRate formata a cotação entre a moeda base do viajante e a moeda do
// destino. Quando as duas coincidem nenhuma chamada de rede é feita.
type ExchangeRate struct {
	HomeCurrency string
	BaseURL      string
	client       *http.Client
	printer      *message.Printer
}

func NewExchangeRate(homeCurrency string) *ExchangeRate {
	if homeCurrency == "" {
		homeCurrency = "USD"
	}
	return &ExchangeRate{
		HomeCurrency: strings.ToUpper(homeCurrency),
		BaseURL:      "https://open.er-api.com",
		client:       newHTTPClient(),
		// separador de milhar no valor exibido ("1 USD ≈ 3,890.12 COP")
		printer: message.NewPrinter(language.English),
	}
}

// Fetch devolve a seção de câmbio pronta para o painel, ou nil.
func (p *ExchangeRate) Fetch(ctx context.Context, targetCurrency string) *model.PanelSection {
	if targetCurrency == "" {
		return nil
	}
	target := strings.ToUpper(targetCurrency)

	if p.HomeCurrency == target {
		return &model.PanelSection{
			Label:       "Tipo de cambio",
			Value:       "Usas " + p.HomeCurrency,
			Description: "La moneda local coincide con tu moneda base.",
		}
	}

	endpoint := fmt.Sprintf("%s/v6/latest/%s", p.BaseURL, url.PathEscape(p.HomeCurrency))

	var data struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := getJSON(ctx, p.client, endpoint, nil, &data); err != nil {
		log.Printf("open.er-api indisponível para %s: %v", target, err)
		return nil
	}

	rate, ok := data.Rates[target]
	if !ok {
		return nil
	}

	return &model.PanelSection{
		Label:       "Tipo de cambio",
		Value:       p.printer.Sprintf("1 %s ≈ %.2f %s", p.HomeCurrency, rate, target),
		Description: "Tasa en tiempo real cortesía de open.er-api.com",
	}
}
