package model

// WeatherSnapshot é o recorte transitório do clima de um destino, derivado de
// uma chamada por requisição. Nunca é persistido. Campos com ponteiro podem
// faltar no payload do provedor sem invalidar o restante do recorte.
type WeatherSnapshot struct {
	Summary        string
	Temperature    *float64
	FeelsLike      *float64
	Humidity       *int
	Wind           *float64
	Country        string
	TimezoneOffset *int // segundos em relação ao UTC
	City           string
}
