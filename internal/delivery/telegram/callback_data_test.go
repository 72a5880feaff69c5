package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

func TestDecodeCallback_QuizAnswer(t *testing.T) {
	data := decodeCallback(buildQuizAnswerCallback(entities.VariantMajority, "ab12cd34", 5, 3))

	assert.Equal(t, actionQuiz, data.Action)
	assert.Equal(t, quizAnswer, data.param(0))
	assert.Equal(t, "majority", data.param(1))
	assert.Equal(t, "ab12cd34", data.param(2))

	q, ok := data.intParam(3)
	assert.True(t, ok)
	assert.Equal(t, 5, q)

	o, ok := data.intParam(4)
	assert.True(t, ok)
	assert.Equal(t, 3, o)

	assert.Equal(t, "", data.param(9))
	_, ok = data.intParam(9)
	assert.False(t, ok)
}

func TestDecodeCallback_NoParams(t *testing.T) {
	data := decodeCallback(buildPopupCallback())

	assert.Equal(t, actionPopup, data.Action)
	assert.Empty(t, data.Params)
}

func TestCallbackData_FitsTelegramLimit(t *testing.T) {
	all := []string{
		buildQuizAnswerCallback(entities.VariantMajority, "ab12cd34", 99, 99),
		buildQuizFocusCallback(entities.VariantMajority, "ab12cd34", 99),
		buildQuizSubmitCallback(entities.VariantMajority, "ab12cd34"),
		buildQuizResetCallback(entities.VariantMajority, "ab12cd34"),
		buildFontCallback(entities.FontNormal),
		buildNavCallback(navQuickQuiz),
	}

	for _, data := range all {
		assert.LessOrEqual(t, len(data), 64, data)
	}
}
