package assisting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/creator-assistant/internal/domain"
)

// Erros específicos do motor de consultas. Nenhum deles é fatal: o serviço sempre
// devolve uma resposta de fallback.
var (
	ErrUnknownIntent       = errors.New("unknown intent")
	ErrInsufficientHistory = errors.New("insufficient history: trend series needs at least two points")
	ErrEmptyDataset        = errors.New("empty dataset: no products or posts available")
	ErrInfiniteGrowth      = errors.New("infinite growth: previous period value is zero")
)

// Códigos expostos para a API
const (
	CodeUnknownIntent       = "QRY_001"
	CodeInsufficientHistory = "QRY_002"
	CodeEmptyDataset        = "QRY_003"
	CodeInfiniteGrowth      = "QRY_004"
)

var errorCodes = map[error]string{
	ErrUnknownIntent:       CodeUnknownIntent,
	ErrInsufficientHistory: CodeInsufficientHistory,
	ErrEmptyDataset:        CodeEmptyDataset,
	ErrInfiniteGrowth:      CodeInfiniteGrowth,
}

// QueryError é um erro com contexto adicional sobre a consulta
type QueryError struct {
	Err     error         // Erro base
	Code    string        // Código de erro para API
	Intent  domain.Intent // Intent em processamento
	Details string        // Detalhes adicionais
}

// Error implementa a interface error
func (e *QueryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Intent, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Intent)
}

// Unwrap retorna o erro subjacente
func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError cria um novo QueryError com o código correspondente ao erro base
func NewQueryError(err error, intent domain.Intent, details string) *QueryError {
	code, ok := errorCodes[err]
	if !ok {
		code = "QRY_000"
	}

	return &QueryError{
		Err:     err,
		Code:    code,
		Intent:  intent,
		Details: details,
	}
}

// ErrorCode extrai o código de um erro do motor de consultas
func ErrorCode(err error) string {
	var qErr *QueryError
	if errors.As(err, &qErr) {
		return qErr.Code
	}
	for base, code := range errorCodes {
		if errors.Is(err, base) {
			return code
		}
	}
	return ""
}
