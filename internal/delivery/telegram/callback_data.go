package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

// Callback action constants. Each one names an interactive element.
const (
	actionPopup  = "popup"
	actionFont   = "font"
	actionDark   = "dark"
	actionMenu   = "menu"
	actionNav    = "nav"
	actionFilter = "filter"
	actionQuiz   = "quiz"
)

// Quiz sub-actions.
const (
	quizAnswer = "a"
	quizFocus  = "f"
	quizSubmit = "s"
	quizReset  = "r"
)

// Menu destinations.
const (
	navProjects  = "projects"
	navQuiz      = "quiz"
	navQuickQuiz = "quickquiz"
	navCountdown = "countdown"
	navGrade     = "grade"
	navSettings  = "settings"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or "" if it is missing.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
	}
}

func buildPopupCallback() string {
	return actionPopup
}

func buildFontCallback(size entities.FontSize) string {
	return callbackData{Action: actionFont, Params: []string{string(size)}}.encode()
}

func buildDarkModeCallback() string {
	return actionDark
}

func buildMenuCallback() string {
	return actionMenu
}

func buildNavCallback(target string) string {
	return callbackData{Action: actionNav, Params: []string{target}}.encode()
}

func buildFilterCallback(tag string) string {
	return callbackData{Action: actionFilter, Params: []string{tag}}.encode()
}

// buildQuizAnswerCallback builds callback data for picking option optIdx of question qIdx.
func buildQuizAnswerCallback(variant entities.QuizVariant, passID string, qIdx, optIdx int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			string(variant),
			passID,
			strconv.Itoa(qIdx),
			strconv.Itoa(optIdx),
		},
	}.encode()
}

// buildQuizFocusCallback builds callback data for showing question qIdx.
func buildQuizFocusCallback(variant entities.QuizVariant, passID string, qIdx int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizFocus, string(variant), passID, strconv.Itoa(qIdx)},
	}.encode()
}

func buildQuizSubmitCallback(variant entities.QuizVariant, passID string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizSubmit, string(variant), passID},
	}.encode()
}

func buildQuizResetCallback(variant entities.QuizVariant, passID string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizReset, string(variant), passID},
	}.encode()
}
