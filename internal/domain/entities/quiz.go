package entities

import (
	"errors"
	"maps"
)

var (
	ErrUnknownQuestion = errors.New("unknown quiz question")
	ErrUnknownOption   = errors.New("unknown quiz option")
)

// QuizVariant names one of the quiz designs.
type QuizVariant string

const (
	VariantMajority QuizVariant = "majority" // 6 questions, majority vote over 6 styles
	VariantPattern  QuizVariant = "pattern"  // 3 questions, ordered rules over 9 tokens
)

// ParseQuizVariant returns the variant for s, or false if s is not a known variant.
func ParseQuizVariant(s string) (QuizVariant, bool) {
	switch QuizVariant(s) {
	case VariantMajority, VariantPattern:
		return QuizVariant(s), true
	default:
		return "", false
	}
}

// QuizOption is a selectable answer. Token is what gets scored.
type QuizOption struct {
	Text  string
	Token string
}

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	ID      string
	Text    string
	Options []QuizOption
}

// HasToken reports whether token is one of the question's options.
func (q QuizQuestion) HasToken(token string) bool {
	for _, o := range q.Options {
		if o.Token == token {
			return true
		}
	}
	return false
}

// QuizResult is the outcome of classifying a set of answers.
type QuizResult struct {
	Label       string
	Description string
	Score       int            // supporting count for Label
	Total       int            // number of questions in the quiz
	Scores      map[string]int // per-token counts, known tokens only
}

// Classifier maps a complete answer set to a result label.
// Implementations must be pure functions of answers.
type Classifier interface {
	Classify(answers map[string]string) QuizResult
}

// QuizDefinition is the static part of a quiz: questions and scoring policy.
type QuizDefinition struct {
	Variant    QuizVariant
	Title      string
	Questions  []QuizQuestion
	Classifier Classifier
}

// Question returns the question with the given id.
func (d *QuizDefinition) Question(id string) (QuizQuestion, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return QuizQuestion{}, false
}

// QuizEngine records one answer per question and classifies them.
type QuizEngine struct {
	def      *QuizDefinition
	answers  map[string]string
	answered int
}

// NewQuizEngine creates an empty quiz pass for def.
func NewQuizEngine(def *QuizDefinition) *QuizEngine {
	return &QuizEngine{
		def:     def,
		answers: make(map[string]string),
	}
}

// Definition returns the quiz the engine runs.
func (e *QuizEngine) Definition() *QuizDefinition {
	return e.def
}

// RecordAnswer upserts the answer for questionID. The answered count grows
// only the first time a question is answered.
func (e *QuizEngine) RecordAnswer(questionID, token string) error {
	q, ok := e.def.Question(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if !q.HasToken(token) {
		return ErrUnknownOption
	}

	if _, answered := e.answers[questionID]; !answered {
		e.answered++
	}
	e.answers[questionID] = token

	return nil
}

// Answer returns the token recorded for questionID.
func (e *QuizEngine) Answer(questionID string) (string, bool) {
	token, ok := e.answers[questionID]
	return token, ok
}

// Answered returns how many distinct questions have an answer.
func (e *QuizEngine) Answered() int {
	return e.answered
}

// Ready reports whether every question has been answered.
func (e *QuizEngine) Ready() bool {
	return e.answered >= len(e.def.Questions)
}

// Classify scores the current answers. It does not require Ready.
func (e *QuizEngine) Classify() QuizResult {
	res := e.def.Classifier.Classify(maps.Clone(e.answers))
	res.Total = len(e.def.Questions)
	return res
}

// Reset clears all answers.
func (e *QuizEngine) Reset() {
	e.answers = make(map[string]string)
	e.answered = 0
}
