package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

var (
	ErrUnknownVariant = errors.New("unknown quiz variant")
	ErrStalePass      = errors.New("quiz pass is no longer active")
	ErrInvalidAnswer  = errors.New("invalid quiz answer")
	ErrQuizNotReady   = errors.New("not every question is answered")
	ErrQuizSubmitted  = errors.New("quiz already submitted")
)

// QuizService runs the teaching style quizzes inside a page session.
type QuizService struct {
	defs      map[entities.QuizVariant]*entities.QuizDefinition
	newPassID func() string
}

func NewQuizService() *QuizService {
	return &QuizService{
		defs: map[entities.QuizVariant]*entities.QuizDefinition{
			entities.VariantMajority: majorityQuiz(),
			entities.VariantPattern:  patternQuiz(),
		},
		newPassID: func() string {
			// Callback data is limited to 64 bytes, a short prefix is enough
			// to tell passes of one chat apart.
			return uuid.NewString()[:8]
		},
	}
}

// Definition returns the quiz for variant.
func (s *QuizService) Definition(variant entities.QuizVariant) (*entities.QuizDefinition, error) {
	def, ok := s.defs[variant]
	if !ok {
		return nil, ErrUnknownVariant
	}
	return def, nil
}

// Start returns the pass in progress for variant, or begins a new one if
// there is none or the previous one was submitted.
func (s *QuizService) Start(sess *entities.PageSession, variant entities.QuizVariant) (*entities.QuizPass, error) {
	def, err := s.Definition(variant)
	if err != nil {
		return nil, err
	}

	if pass, ok := sess.Quizzes[variant]; ok && !pass.Submitted {
		return pass, nil
	}

	pass := &entities.QuizPass{
		PassID: s.newPassID(),
		Engine: entities.NewQuizEngine(def),
	}
	sess.Quizzes[variant] = pass

	return pass, nil
}

// Answer records option optIdx of question qIdx.
func (s *QuizService) Answer(
	sess *entities.PageSession,
	variant entities.QuizVariant,
	passID string,
	qIdx, optIdx int,
) (*entities.QuizPass, error) {
	pass, err := s.activePass(sess, variant, passID)
	if err != nil {
		return nil, err
	}
	if pass.Submitted {
		return nil, ErrQuizSubmitted
	}

	questions := pass.Engine.Definition().Questions
	if qIdx < 0 || qIdx >= len(questions) {
		return nil, ErrInvalidAnswer
	}
	q := questions[qIdx]
	if optIdx < 0 || optIdx >= len(q.Options) {
		return nil, ErrInvalidAnswer
	}

	if err := pass.Engine.RecordAnswer(q.ID, q.Options[optIdx].Token); err != nil {
		return nil, err
	}

	return pass, nil
}

// Submit classifies a complete pass.
func (s *QuizService) Submit(
	sess *entities.PageSession,
	variant entities.QuizVariant,
	passID string,
) (entities.QuizResult, error) {
	pass, err := s.activePass(sess, variant, passID)
	if err != nil {
		return entities.QuizResult{}, err
	}
	if !pass.Engine.Ready() {
		return entities.QuizResult{}, ErrQuizNotReady
	}

	pass.Submitted = true
	return pass.Engine.Classify(), nil
}

// Reset clears the answers and starts a fresh pass with a new id.
func (s *QuizService) Reset(
	sess *entities.PageSession,
	variant entities.QuizVariant,
	passID string,
) (*entities.QuizPass, error) {
	pass, err := s.activePass(sess, variant, passID)
	if err != nil {
		return nil, err
	}

	pass.Engine.Reset()
	pass.Submitted = false
	pass.Focus = 0
	pass.PassID = s.newPassID()

	return pass, nil
}

func (s *QuizService) activePass(
	sess *entities.PageSession,
	variant entities.QuizVariant,
	passID string,
) (*entities.QuizPass, error) {
	if _, err := s.Definition(variant); err != nil {
		return nil, err
	}
	pass, ok := sess.Quizzes[variant]
	if !ok || pass.PassID != passID {
		return nil, ErrStalePass
	}
	return pass, nil
}
