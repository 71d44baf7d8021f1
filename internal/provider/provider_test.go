package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWeatherSemCredencialNaoChama(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	p := NewOpenWeather("")
	p.BaseURL = ts.URL

	assert.Nil(t, p.Fetch(context.Background(), "Paris"))
	assert.False(t, called)
}

func TestOpenWeatherFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "es", r.URL.Query().Get("lang"))
		fmt.Fprint(w, `{
			"weather":[{"description":"cielo claro"}],
			"main":{"temp":21.6,"feels_like":23.1,"humidity":60},
			"wind":{"speed":4.2},
			"sys":{"country":"FR"},
			"timezone":7200,
			"name":"Paris"
		}`)
	}))
	defer ts.Close()

	p := NewOpenWeather("test-key")
	p.BaseURL = ts.URL

	snapshot := p.Fetch(context.Background(), "Paris")
	require.NotNil(t, snapshot)
	assert.Equal(t, "Cielo claro", snapshot.Summary)
	assert.Equal(t, "FR", snapshot.Country)
	assert.Equal(t, "Paris", snapshot.City)
	require.NotNil(t, snapshot.Temperature)
	assert.InDelta(t, 21.6, *snapshot.Temperature, 0.001)
	require.NotNil(t, snapshot.TimezoneOffset)
	assert.Equal(t, 7200, *snapshot.TimezoneOffset)
}

func TestOpenWeatherErroDeServidorDegrada(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	p := NewOpenWeather("test-key")
	p.BaseURL = ts.URL

	assert.Nil(t, p.Fetch(context.Background(), "Paris"))
}

func TestOpenWeatherPayloadInvalidoDegrada(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "isto não é JSON")
	}))
	defer ts.Close()

	p := NewOpenWeather("test-key")
	p.BaseURL = ts.URL

	assert.Nil(t, p.Fetch(context.Background(), "Paris"))
}

func TestUnsplashSemCredencialNaoChama(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	p := NewUnsplash("")
	p.BaseURL = ts.URL

	assert.Empty(t, p.Fetch(context.Background(), "Paris"))
	assert.False(t, called)
}

func TestUnsplashFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		assert.Equal(t, "v1", r.Header.Get("Accept-Version"))
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"results":[
			{"urls":{"regular":"https://img/1"}},
			{"urls":{"regular":""}},
			{"urls":{"regular":"https://img/2"}}
		]}`)
	}))
	defer ts.Close()

	p := NewUnsplash("test-key")
	p.BaseURL = ts.URL

	urls := p.Fetch(context.Background(), "Paris")
	assert.Equal(t, []string{"https://img/1", "https://img/2"}, urls)
}

func TestUnsplashFalhaDegradaParaVazio(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	p := NewUnsplash("test-key")
	p.BaseURL = ts.URL

	assert.Empty(t, p.Fetch(context.Background(), "Paris"))
}

func TestRESTCountriesPrimeiraMoeda(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/alpha/FR", r.URL.Path)
		assert.Equal(t, "currencies", r.URL.Query().Get("fields"))
		fmt.Fprint(w, `[{"currencies":{"EUR":{"name":"Euro","symbol":"€"}}}]`)
	}))
	defer ts.Close()

	p := NewRESTCountries()
	p.BaseURL = ts.URL

	assert.Equal(t, "EUR", p.Fetch(context.Background(), "FR"))
}

func TestRESTCountriesCodigoVazioNaoChama(t *testing.T) {
	p := NewRESTCountries()
	p.BaseURL = "http://127.0.0.1:0" // qualquer chamada falharia
	assert.Empty(t, p.Fetch(context.Background(), ""))
}

func TestRESTCountriesSemMoedasDegrada(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"currencies":{}}]`)
	}))
	defer ts.Close()

	p := NewRESTCountries()
	p.BaseURL = ts.URL

	assert.Empty(t, p.Fetch(context.Background(), "XX"))
}

func TestExchangeRateMesmaMoedaNaoChamaRede(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	p := NewExchangeRate("USD")
	p.BaseURL = ts.URL

	section := p.Fetch(context.Background(), "usd")
	require.NotNil(t, section)
	assert.Equal(t, "Usas USD", section.Value)
	assert.Equal(t, "La moneda local coincide con tu moneda base.", section.Description)
	assert.False(t, called)
}

func TestExchangeRateFormataComSeparadorDeMilhar(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/latest/USD", r.URL.Path)
		fmt.Fprint(w, `{"rates":{"COP":3890.1234,"EUR":0.92}}`)
	}))
	defer ts.Close()

	p := NewExchangeRate("usd")
	p.BaseURL = ts.URL

	section := p.Fetch(context.Background(), "COP")
	require.NotNil(t, section)
	assert.Equal(t, "Tipo de cambio", section.Label)
	assert.Equal(t, "1 USD ≈ 3,890.12 COP", section.Value)
}

func TestExchangeRateMoedaDesconhecidaDegrada(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rates":{"EUR":0.92}}`)
	}))
	defer ts.Close()

	p := NewExchangeRate("USD")
	p.BaseURL = ts.URL

	assert.Nil(t, p.Fetch(context.Background(), "XYZ"))
}

func TestExchangeRateAlvoVazioNaoEmiteSecao(t *testing.T) {
	p := NewExchangeRate("USD")
	assert.Nil(t, p.Fetch(context.Background(), ""))
}
