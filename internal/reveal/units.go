// Package reveal controla a animação de digitação das respostas do assistente.
// O texto já está pronto; a animação apenas revela prefixos dele em passos.
package reveal

import (
	"strings"
	"unicode/utf8"
)

type Mode string

const (
	ModeChar Mode = "char"
	ModeLine Mode = "line"
)

// DefaultLongThreshold é o tamanho (em runas) a partir do qual a revelação passa a ser por linha
const DefaultLongThreshold = 600

// Disclaimer acompanha toda mensagem do assistente depois de revelada
const Disclaimer = "LTK AI can make mistakes. Please double check responses."

const boldMarker = "**"

// Units quebra o texto nas unidades reveladas a cada passo.
// No modo char cada runa é uma unidade, exceto o marcador ** e a quebra de linha, que nunca são divididos.
// No modo line cada linha, junto com seu \n, é uma unidade.
func Units(text string, mode Mode) []string {
	if text == "" {
		return nil
	}

	if mode == ModeLine {
		return strings.SplitAfter(strings.TrimSuffix(text, "\n"), "\n")
	}

	units := make([]string, 0, utf8.RuneCountInString(text))
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], boldMarker) {
			units = append(units, boldMarker)
			i += len(boldMarker)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		units = append(units, text[i:i+size])
		i += size
	}

	return units
}

// ModeFor escolhe o modo pelo tamanho do texto
func ModeFor(text string, longThreshold int) Mode {
	if longThreshold <= 0 {
		longThreshold = DefaultLongThreshold
	}
	if utf8.RuneCountInString(text) > longThreshold {
		return ModeLine
	}
	return ModeChar
}

// Plan é a sequência de prefixos de um texto, um por passo da animação
type Plan struct {
	Text    string
	Mode    Mode
	offsets []int
}

// NewPlan calcula os passos da revelação de text
func NewPlan(text string, longThreshold int) Plan {
	mode := ModeFor(text, longThreshold)
	units := Units(text, mode)

	offsets := make([]int, len(units))
	end := 0
	for i, unit := range units {
		end += len(unit)
		offsets[i] = end
	}

	// o \n final removido no modo line ainda pertence ao último passo
	if n := len(offsets); n > 0 {
		offsets[n-1] = len(text)
	}

	return Plan{Text: text, Mode: mode, offsets: offsets}
}

// Total é a quantidade de passos; zero para texto vazio
func (p Plan) Total() int {
	return len(p.offsets)
}

// Prefix retorna o texto visível depois de step passos
func (p Plan) Prefix(step int) string {
	if step <= 0 || len(p.offsets) == 0 {
		return ""
	}
	if step >= len(p.offsets) {
		return p.Text
	}
	return p.Text[:p.offsets[step-1]]
}
