package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado pela rota

	// Erros de conversa
	ErrSessionNotFound    = "CHAT_001" // Sessão inexistente
	ErrEmptyMessage       = "CHAT_002" // Mensagem vazia
	ErrNoActiveReveal     = "CHAT_003" // Nenhuma resposta sendo revelada
	ErrStreamUnsupported  = "CHAT_004" // Conexão não suporta streaming
	ErrHistoryUnavailable = "CHAT_005" // Histórico não pôde ser lido ou gravado
	ErrAlreadyAnswered    = "CHAT_006" // Mensagem já respondida

	// Erros de jobs agendados
	ErrJobNotFound       = "CRON_001" // Tipo de job desconhecido
	ErrJobAlreadyRunning = "CRON_002" // Job já em execução

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrSessionNotFound:     http.StatusNotFound,
	ErrEmptyMessage:        http.StatusBadRequest,
	ErrNoActiveReveal:      http.StatusConflict,
	ErrAlreadyAnswered:     http.StatusConflict,
	ErrStreamUnsupported:   http.StatusInternalServerError,
	ErrHistoryUnavailable:  http.StatusServiceUnavailable,
	ErrJobNotFound:         http.StatusNotFound,
	ErrJobAlreadyRunning:   http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código; desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
