// Package extract recupera campos rotulados de texto livre usando a convenção
// "<label>: valor | <label>: valor" das mensagens do frontend.
package extract

import "strings"

// Field devolve o trecho entre "<label>:" e o próximo "|" (ou o fim do texto),
// sem espaços nas pontas nem pontos finais. Ausência não é erro: ok=false.
func Field(text, label string) (string, bool) {
	_, rest, found := strings.Cut(text, label+":")
	if !found {
		return "", false
	}
	segment, _, _ := strings.Cut(rest, "|")
	value := strings.Trim(strings.TrimSpace(segment), ".")
	if value == "" {
		return "", false
	}
	return value, true
}

// Destino recupera o campo "Destino deseado" da pergunta do viajante.
func Destino(text string) (string, bool) {
	return Field(text, "Destino deseado")
}

// Fechas recupera o campo "Fechas aproximadas".
func Fechas(text string) (string, bool) {
	return Field(text, "Fechas aproximadas")
}
