// Package assisting implementa o motor de consultas do assistente: classificação de
// intent, seleção de dados e formatação da resposta. Tudo é síncrono e sem efeitos colaterais.
package assisting

//go:generate mockgen -source=service.go -destination=mocks/mock_assistant.go -package=mocks

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/internal/domain"
)

// Assistant é a superfície do motor de consultas: texto livre entra, texto formatado sai
type Assistant interface {
	// ProcessQuery responde a uma pergunta; nunca falha, sempre devolve um texto
	ProcessQuery(text string) string

	// Answer responde a uma pergunta informando também o intent e o erro recuperado, se houver
	Answer(text string) Reply

	// Welcome retorna a mensagem de boas-vindas exibida no início de uma conversa
	Welcome() string

	// QuickActions retorna os prompts prontos para atalhos da interface
	QuickActions() []domain.QuickAction

	// Dataset expõe o conjunto de dados somente para leitura
	Dataset() *domain.CreatorDataset
}

// Reply é a resposta completa de uma consulta
type Reply struct {
	Intent domain.Intent `json:"intent"`
	Text   string        `json:"response"`
	Err    error         `json:"-"`
}

type Service struct {
	dataset *domain.CreatorDataset
}

// NewService cria o motor de consultas sobre um dataset imutável
func NewService(dataset *domain.CreatorDataset) Assistant {
	return &Service{
		dataset: dataset,
	}
}

func (s *Service) ProcessQuery(text string) string {
	return s.Answer(text).Text
}

func (s *Service) Answer(text string) Reply {
	intent, matched := classify(text)
	if !matched {
		logrus.WithField("intent", intent).Debug("assistant: nenhuma regra casou, usando help")
		return Reply{
			Intent: domain.IntentHelp,
			Text:   HelpText(),
			Err:    NewQueryError(ErrUnknownIntent, domain.IntentHelp, ""),
		}
	}

	slice, err := Select(intent, s.dataset)
	if err != nil {
		logrus.WithError(err).WithField("intent", intent).Warn("assistant: dados insuficientes para o intent")
		return Reply{
			Intent: intent,
			Text:   fallbackText(intent, err),
			Err:    err,
		}
	}

	response, err := Render(slice)
	if err != nil {
		logrus.WithError(err).WithField("intent", intent).Warn("assistant: resposta gerada com fallback")
		if response == "" {
			response = fallbackText(intent, err)
		}
	}

	return Reply{
		Intent: intent,
		Text:   response,
		Err:    err,
	}
}

func (s *Service) Welcome() string {
	return HelpText()
}

func (s *Service) QuickActions() []domain.QuickAction {
	return QuickActions()
}

func (s *Service) Dataset() *domain.CreatorDataset {
	return s.dataset
}

func fallbackText(intent domain.Intent, err error) string {
	if errors.Is(err, ErrUnknownIntent) {
		return HelpText()
	}
	return InsufficientDataText(intent)
}
