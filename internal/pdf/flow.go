package pdf

// flowState descreve o ciclo de vida do fluxo de texto paginado.
type flowState int

const (
	flowWithinPage flowState = iota
	flowBreakPending
	flowFinalized
)

// textFlow controla o cursor vertical do resumo de conversa e decide quando a
// página esgotou. O cursor exatamente sobre a margem inferior ainda cabe; a
// quebra só fica pendente quando ele a ultrapassa.
type textFlow struct {
	y            float64
	bottomMargin float64
	leading      float64
	state        flowState
}

func newTextFlow(startY, bottomMargin, leading float64) *textFlow {
	return &textFlow{
		y:            startY,
		bottomMargin: bottomMargin,
		leading:      leading,
		state:        flowWithinPage,
	}
}

// Advance consome uma linha e devolve a posição Y onde ela deve ser desenhada.
func (f *textFlow) Advance() float64 {
	y := f.y
	f.y += f.leading
	if f.y > f.bottomMargin {
		f.state = flowBreakPending
	}
	return y
}

// NeedsBreak informa se a próxima linha exige uma nova página.
func (f *textFlow) NeedsBreak() bool {
	return f.state == flowBreakPending
}

// Reset reposiciona o cursor no topo útil da página de continuação.
func (f *textFlow) Reset(startY float64) {
	f.y = startY
	f.state = flowWithinPage
}

// Finalize encerra o fluxo; nenhum Advance posterior é esperado.
func (f *textFlow) Finalize() {
	f.state = flowFinalized
}

func (f *textFlow) Finalized() bool {
	return f.state == flowFinalized
}
