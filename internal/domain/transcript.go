package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// TranscriptEntry é uma mensagem trocada na sessão. O transcript só recebe inclusões.
type TranscriptEntry struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatExchange é o par pergunta/resposta produzido por um envio
type ChatExchange struct {
	User      TranscriptEntry `json:"user"`
	Assistant TranscriptEntry `json:"assistant"`
	Intent    Intent          `json:"intent"`
	Anchor    int             `json:"anchor"` // Índice da mensagem do usuário no transcript
}

// HistoryRecord é o transcript persistido sob uma chave
type HistoryRecord struct {
	Key       string            `json:"key"`
	Entries   []TranscriptEntry `json:"entries"`
	UpdatedAt time.Time         `json:"updated_at"`
}
