package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"content-curator/internal/models"
)

const (
	keywordSystemPrompt = "Você é um assistente técnico que responde com listas JSON válidas."

	translateSystemPrompt = "Você traduz listas de palavras para o inglês, respondendo com listas JSON simples."

	searchPhraseSystemPrompt = "Você é um especialista em SEO para YouTube. Receba um título e uma descrição de um " +
		"conteúdo técnico e gere uma única linha com as palavras-chave otimizadas para busca, SEM repeti-las, " +
		"focando nos termos mais relevantes da área de tecnologia e programação. A resposta deve conter apenas " +
		"os termos em formato de busca, separados por espaço."
)

type KeywordService struct {
	gen         Generator
	maxKeywords int
}

func NewKeywordService(gen Generator, maxKeywords int) *KeywordService {
	return &KeywordService{gen: gen, maxKeywords: maxKeywords}
}

// ExtractKeywords asks the model for up to maxKeywords Portuguese keywords
// and then translates the extracted list to English in a second call.
//
// It never fails the request pipeline: any failure collapses to an empty list
// and is logged. A translation failure keeps the already-extracted Portuguese
// list, so partial success is preserved.
func (s *KeywordService) ExtractKeywords(ctx context.Context, text string) models.KeywordSet {
	set := models.KeywordSet{PT: []string{}, EN: []string{}}

	extractPrompt := fmt.Sprintf(
		"Extraia até %d palavras-chave relevantes do seguinte texto relacionado à programação. "+
			"Responda apenas com uma lista JSON simples (por exemplo: [\"for\", \"while\", \"automatizar tarefas\"]). "+
			"Não use formatação markdown como ``` ou campos como 'palavras-chave'.\n\nTexto:\n%s",
		s.maxKeywords, text,
	)

	reply, err := s.gen.Generate(ctx, GenerateRequest{
		System:      keywordSystemPrompt,
		User:        extractPrompt,
		Temperature: 0.3,
	})
	if err != nil {
		logrus.WithError(err).Warn("keyword extraction call failed")
		return set
	}

	pt, degraded := ParseKeywordList(reply)
	if degraded {
		logrus.WithField("reply", reply).Warn("keyword list recovered via line-split fallback")
	}
	set.PT = pt

	if len(pt) == 0 {
		logrus.Warn("keyword extraction produced no keywords, skipping translation")
		return set
	}

	serialized, err := json.Marshal(pt)
	if err != nil {
		logrus.WithError(err).Warn("failed to serialize extracted keywords")
		return set
	}

	translatePrompt := fmt.Sprintf(
		"Traduza as palavras-chave a seguir para o inglês. "+
			"Responda apenas com uma lista JSON de palavras ou expressões.\n\n%s",
		serialized,
	)

	reply, err = s.gen.Generate(ctx, GenerateRequest{
		System:      translateSystemPrompt,
		User:        translatePrompt,
		Temperature: 0.2,
	})
	if err != nil {
		logrus.WithError(err).Warn("keyword translation call failed")
		return set
	}

	en, degraded := ParseKeywordList(reply)
	if degraded {
		logrus.WithField("reply", reply).Warn("translated list recovered via line-split fallback")
	}
	set.EN = en

	return set
}

// SearchPhrase generates a single search-optimized line for the given title
// and description, in the requested language ("português" or "inglês").
func (s *KeywordService) SearchPhrase(ctx context.Context, title, description, language string) (string, error) {
	user := fmt.Sprintf("Título: %s\nDescrição: %s\n\nResponda em %s.", title, description, language)

	reply, err := s.gen.Generate(ctx, GenerateRequest{
		System:      searchPhraseSystemPrompt,
		User:        user,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate search phrase: %w", err)
	}

	return strings.TrimSpace(reply), nil
}
