package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"content-curator/internal/models"
)

const (
	quizSystemPrompt = "Você é um gerador de quizzes gamificados para materiais didáticos."

	maxDescriptionChars = 200
)

type QuizService struct {
	gen             Generator
	maxOutputTokens int32
	sink            DiagnosticSink
}

// NewQuizService wires the quiz generator. maxOutputTokens must be generous:
// a truncated reply silently produces an incomplete JSON document.
func NewQuizService(gen Generator, maxOutputTokens int32, sink DiagnosticSink) *QuizService {
	if sink == nil {
		sink = LogSink{}
	}
	return &QuizService{gen: gen, maxOutputTokens: maxOutputTokens, sink: sink}
}

// GenerateQuiz builds the full quiz document from extracted PDF text. It
// fails when the text is blank or the reply cannot be parsed after repair;
// the question count and type distribution of the reply are logged but not
// enforced.
func (s *QuizService) GenerateQuiz(ctx context.Context, pdfText string) (*models.Quiz, error) {
	if strings.TrimSpace(pdfText) == "" {
		return nil, &GenerationError{Message: "pdf text is empty"}
	}

	reply, err := s.gen.Generate(ctx, GenerateRequest{
		System:          quizSystemPrompt,
		User:            buildQuizPrompt(pdfText),
		Temperature:     0.7,
		MaxOutputTokens: s.maxOutputTokens,
	})
	if err != nil {
		return nil, &GenerationError{Message: "quiz generation call failed", Err: err}
	}

	var quiz models.Quiz
	if err := parseObject(reply, &quiz); err != nil {
		s.sink.CaptureRawReply("quiz", reply)
		return nil, &GenerationError{Message: "failed to decode quiz document", Err: err}
	}

	if desc := []rune(quiz.Description); len(desc) > maxDescriptionChars {
		quiz.Description = string(desc[:maxDescriptionChars])
	}

	for i := range quiz.Questions {
		if quiz.Questions[i].QuestionID == "" {
			quiz.Questions[i].QuestionID = uuid.NewString()
		}
	}

	logrus.WithField("questions", len(quiz.Questions)).Info("quiz document generated")

	return &quiz, nil
}

func buildQuizPrompt(pdfText string) string {
	var b strings.Builder

	b.WriteString("Receba o texto abaixo, extraído de um PDF, e crie:\n\n")
	b.WriteString("- Um título para o quiz (máx. 80 caracteres)\n")
	b.WriteString("- Uma descrição do quiz (máx. 200 caracteres)\n")
	b.WriteString("- Gere **exatamente 20 perguntas** bem distribuídas e variadas, equilibrando entre os tipos abaixo, de acordo com o conteúdo do PDF. Evite sobreposição de tema.\n")
	b.WriteString(`    1. multiple_choice  (múltipla escolha, 1 correta)
    2. multiple_select  (múltipla seleção, 2 ou mais corretas)
    3. true_false       (Verdadeiro ou Falso)
    4. fill_in_blank    (Complete a lacuna)
    5. matching         (Associação de pares)
    6. ordering         (Ordenação/sequência)
    7. short_answer     (Resposta curta, 1-3 palavras)
`)
	b.WriteString("\nPara cada conteúdo possível do PDF, gere perguntas **sem sobreposição de assunto**, utilizando todos os tipos possíveis, variando ao máximo.\n")
	b.WriteString("Se algum tipo não for aplicável para algum conteúdo, use múltipla escolha como alternativa.\n\n")

	b.WriteString("Para cada pergunta, siga este formato:\n")
	b.WriteString(`- "question_id": uuid fictício
- "type": um dos tipos acima (em inglês)
- "level": basic, intermediate, advanced
- "question": enunciado claro
- "options": array de objetos {label, text, is_correct, explanation} para tipos aplicáveis
- "correct_answers": array (ex: ["A"], ["A","C"], ["verdadeiro"], ["palavra"], ["item1","item2"])
- "guidance_on_error": orientação de pesquisa em caso de erro
- "guidance_on_success": sugestão de aprofundamento em caso de acerto
- "times_used": 0
- "status": "draft"
- "extra": objeto opcional para detalhes do tipo (ex: pares para matching, sequência correta para ordering, texto de referência para blank, etc.)
`)

	b.WriteString("\n**Responda apenas com o JSON** nesta estrutura (sem explicações, sem comentários, sem texto extra):\n")
	b.WriteString(`{
  "title": "...",
  "description": "...",
  "questions": [ ... ]
}
`)

	b.WriteString("\nTexto do PDF:\n")
	b.WriteString(pdfText)
	b.WriteString("\n")

	return b.String()
}
