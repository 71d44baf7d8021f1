package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
)

// restCountriesResponse espelha o campo "currencies" da resposta por país.
type restCountriesResponse []struct {
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
}

// RESTCountries resolve a moeda principal de um país pelo código ISO.
type RESTCountries struct {
	BaseURL string
	client  *http.Client
}

func NewRESTCountries() *RESTCountries {
	return &RESTCountries{
		BaseURL: "https://restcountries.com",
		client:  newHTTPClient(),
	}
}

// Fetch devolve o primeiro código de moeda do país, ou "". Os códigos são
// ordenados para manter o resultado determinístico quando o país tem mais de
// uma moeda.
func (p *RESTCountries) Fetch(ctx context.Context, countryCode string) string {
	if countryCode == "" {
		return ""
	}

	endpoint := fmt.Sprintf("%s/v3.1/alpha/%s?fields=currencies", p.BaseURL, url.PathEscape(countryCode))

	var data restCountriesResponse
	if err := getJSON(ctx, p.client, endpoint, nil, &data); err != nil {
		log.Printf("RESTCountries indisponível para %q: %v", countryCode, err)
		return ""
	}
	if len(data) == 0 || len(data[0].Currencies) == 0 {
		return ""
	}

	codes := make([]string, 0, len(data[0].Currencies))
	for code := range data[0].Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes[0]
}
