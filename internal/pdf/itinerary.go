// Package pdf desenha o itinerário de viagem de uma sessão como documento
// paginado: cabeçalho em toda página, resumo da conversa com quebra automática
// e uma página final de galeria com as fotos do destino.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"

	"github.com/vitormoschetta/viajeia/internal/model"
)

// ErrNoHistory indica que a sessão não tem conversa para gerar o documento.
var ErrNoHistory = errors.New("sessão sem histórico de conversa")

// Layout da página (Letter em pontos, coordenadas a partir do topo).
const (
	marginX      = 40.0
	headerTitleY = 60.0
	headerSubY   = 80.0
	headerRuleY  = 90.0
	bodyTopY     = 120.0
	bottomMargin = 80.0 // espaço reservado no pé de cada página
	leading      = 14.0
	wrapWidth    = 90

	photoBoxW = 180.0
	photoBoxH = 160.0
	photoTopY = 160.0
)

// Renderer monta o PDF do itinerário a partir do histórico da sessão.
type Renderer struct {
	client *http.Client
}

func NewRenderer() *Renderer {
	return &Renderer{client: &http.Client{Timeout: 8 * time.Second}}
}

// Render produz os bytes do PDF. Devolve ErrNoHistory para histórico vazio.
func (r *Renderer) Render(ctx context.Context, history []model.HistoryEntry, destino, fechas string, photos []string) ([]byte, error) {
	doc, err := r.build(ctx, history, destino, fechas, photos)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("falha ao finalizar o PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) build(ctx context.Context, history []model.HistoryEntry, destino, fechas string, photos []string) (*fpdf.Fpdf, error) {
	if len(history) == 0 {
		return nil, ErrNoHistory
	}

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := doc.GetPageSize()

	drawHeader := func() {
		doc.SetFont("Helvetica", "B", 22)
		doc.Text(marginX, headerTitleY, tr("ViajeIA"))
		doc.SetFont("Helvetica", "", 12)
		doc.Text(marginX, headerSubY, tr("Alex, tu consultor personal de viajes"))
		doc.Line(marginX, headerRuleY, pageW-marginX, headerRuleY)
	}

	doc.AddPage()
	drawHeader()

	y := bodyTopY
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(marginX, y, tr("Destino: "+destino))
	y += 20
	doc.Text(marginX, y, tr("Fechas: "+fechas))
	y += 30

	doc.SetFont("Helvetica", "B", 13)
	doc.Text(marginX, y, tr("Resumen de la conversación"))
	y += 16

	flow := newTextFlow(y, pageH-bottomMargin, leading)
	doc.SetFont("Helvetica", "", 11)

	writeLine := func(line string) {
		if flow.NeedsBreak() {
			doc.AddPage()
			drawHeader()
			doc.SetFont("Helvetica", "B", 13)
			doc.Text(marginX, bodyTopY, tr("Resumen de la conversación (cont.)"))
			flow.Reset(bodyTopY + 16)
			doc.SetFont("Helvetica", "", 11)
		}
		lineY := flow.Advance()
		if line != "" {
			doc.Text(marginX, lineY, tr(line))
		}
	}

	for _, entry := range history {
		writeLine("• Pregunta: " + entry.Pregunta)
		if entry.Respuesta != "" {
			for _, line := range WrapText(entry.Respuesta, wrapWidth) {
				writeLine("  " + line)
			}
		}
		writeLine("")
	}
	flow.Finalize()

	if len(photos) > 0 {
		doc.AddPage()
		drawHeader()
		doc.SetFont("Helvetica", "B", 13)
		doc.Text(marginX, bodyTopY, tr("Inspiración visual"))

		xPositions := []float64{marginX, pageW/2 - 90, pageW - 220}
		for i, photoURL := range photos {
			if i >= len(xPositions) {
				break
			}
			if err := r.drawPhoto(ctx, doc, photoURL, xPositions[i]); err != nil {
				// uma foto quebrada não derruba o restante da galeria
				log.Printf("foto ignorada no itinerário: %v", err)
			}
		}
	}

	return doc, nil
}

// drawPhoto baixa a imagem e a encaixa na caixa fixa da galeria preservando a
// proporção, centralizada.
func (r *Renderer) drawPhoto(ctx context.Context, doc *fpdf.Fpdf, photoURL string, x float64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status inesperado %d para %s", resp.StatusCode, photoURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Valida e mede antes de registrar no documento: registrar bytes
	// inválidos deixaria o fpdf em estado de erro permanente.
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("imagem inválida em %s: %w", photoURL, err)
	}
	imageType, ok := fpdfImageType(format)
	if !ok {
		return fmt.Errorf("formato %q não suportado em %s", format, photoURL)
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	doc.RegisterImageOptionsReader(photoURL, opts, bytes.NewReader(data))

	scale := math.Min(photoBoxW/float64(cfg.Width), photoBoxH/float64(cfg.Height))
	w := float64(cfg.Width) * scale
	h := float64(cfg.Height) * scale
	doc.ImageOptions(photoURL, x+(photoBoxW-w)/2, photoTopY+(photoBoxH-h)/2, w, h, false, opts, 0, "")
	return nil
}

func fpdfImageType(format string) (string, bool) {
	switch format {
	case "jpeg":
		return "JPG", true
	case "png":
		return "PNG", true
	case "gif":
		return "GIF", true
	}
	return "", false
}

// WrapText quebra o texto em linhas de até width caracteres, sempre em limite
// de palavra; uma palavra maior que a largura ocupa a linha inteira.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	return append(lines, current)
}
