package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func majorityDef() *QuizDefinition {
	opts := []QuizOption{
		{Text: "a", Token: "Alpha"},
		{Text: "b", Token: "Beta"},
		{Text: "g", Token: "Gamma"},
	}
	return &QuizDefinition{
		Variant: VariantMajority,
		Questions: []QuizQuestion{
			{ID: "q1", Options: opts},
			{ID: "q2", Options: opts},
			{ID: "q3", Options: opts},
			{ID: "q4", Options: opts},
		},
		Classifier: MajorityClassifier{
			Labels:       []string{"Alpha", "Beta", "Gamma"},
			Default:      "Mixed",
			Descriptions: map[string]string{"Alpha": "first", "Mixed": "none"},
		},
	}
}

func TestQuizEngine_RecordAnswerCountsDistinctQuestions(t *testing.T) {
	e := NewQuizEngine(majorityDef())

	require.NoError(t, e.RecordAnswer("q1", "Alpha"))
	require.NoError(t, e.RecordAnswer("q1", "Beta"))
	require.NoError(t, e.RecordAnswer("q2", "Beta"))

	assert.Equal(t, 2, e.Answered())
	assert.False(t, e.Ready())

	token, ok := e.Answer("q1")
	assert.True(t, ok)
	assert.Equal(t, "Beta", token)

	require.NoError(t, e.RecordAnswer("q3", "Gamma"))
	require.NoError(t, e.RecordAnswer("q4", "Gamma"))
	assert.True(t, e.Ready())
}

func TestQuizEngine_RejectsUnknownInput(t *testing.T) {
	e := NewQuizEngine(majorityDef())

	assert.ErrorIs(t, e.RecordAnswer("q9", "Alpha"), ErrUnknownQuestion)
	assert.ErrorIs(t, e.RecordAnswer("q1", "Delta"), ErrUnknownOption)
	assert.Zero(t, e.Answered())
}

func TestQuizEngine_Reset(t *testing.T) {
	e := NewQuizEngine(majorityDef())
	require.NoError(t, e.RecordAnswer("q1", "Alpha"))

	e.Reset()

	assert.Zero(t, e.Answered())
	_, ok := e.Answer("q1")
	assert.False(t, ok)
	require.NoError(t, e.RecordAnswer("q1", "Alpha"))
	assert.Equal(t, 1, e.Answered())
}

func TestMajorityClassifier(t *testing.T) {
	c := majorityDef().Classifier

	tests := []struct {
		name      string
		answers   map[string]string
		wantLabel string
		wantScore int
	}{
		{"empty uses default", map[string]string{}, "Mixed", 0},
		{"clear winner", map[string]string{"q1": "Beta", "q2": "Beta", "q3": "Alpha"}, "Beta", 2},
		{"tie goes to first label", map[string]string{"q1": "Gamma", "q2": "Alpha", "q3": "Gamma", "q4": "Alpha"}, "Alpha", 2},
		{"unknown tokens ignored", map[string]string{"q1": "Delta", "q2": "Delta", "q3": "Gamma"}, "Gamma", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := c.Classify(tc.answers)
			assert.Equal(t, tc.wantLabel, res.Label)
			assert.Equal(t, tc.wantScore, res.Score)
		})
	}
}

func TestMajorityClassifier_DescriptionFollowsLabel(t *testing.T) {
	res := majorityDef().Classifier.Classify(map[string]string{"q1": "Alpha"})
	assert.Equal(t, "first", res.Description)
	assert.Equal(t, map[string]int{"Alpha": 1, "Beta": 0, "Gamma": 0}, res.Scores)
}

func TestPatternClassifier_RuleOrderMatters(t *testing.T) {
	c := PatternClassifier{
		Tokens: []string{"a", "b", "c", "d"},
		Rules: []PatternRule{
			{First: "a", Second: "b", Label: "AB"},
			{First: "a", Second: "c", Label: "AC"},
		},
		Fallback: TokenRule{Token: "d", Label: "D"},
		Default:  "none",
	}

	tests := []struct {
		name    string
		answers map[string]string
		want    string
	}{
		{"both rules match, first wins", map[string]string{"q1": "a", "q2": "b", "q3": "c"}, "AB"},
		{"second rule", map[string]string{"q1": "a", "q2": "c"}, "AC"},
		{"fallback token", map[string]string{"q1": "b", "q2": "d"}, "D"},
		{"default", map[string]string{"q1": "b", "q2": "c"}, "none"},
		{"single token is not a pair", map[string]string{"q1": "a"}, "none"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.answers).Label)
		})
	}
}

func TestQuizEngine_ClassifyIsOrderIndependent(t *testing.T) {
	first := NewQuizEngine(majorityDef())
	second := NewQuizEngine(majorityDef())

	require.NoError(t, first.RecordAnswer("q1", "Alpha"))
	require.NoError(t, first.RecordAnswer("q2", "Gamma"))
	require.NoError(t, first.RecordAnswer("q3", "Gamma"))

	require.NoError(t, second.RecordAnswer("q3", "Alpha"))
	require.NoError(t, second.RecordAnswer("q2", "Gamma"))
	require.NoError(t, second.RecordAnswer("q1", "Alpha"))
	require.NoError(t, second.RecordAnswer("q3", "Gamma"))

	assert.Equal(t, first.Classify(), second.Classify())
	assert.Equal(t, first.Classify(), first.Classify())
}

func TestParseQuizVariant(t *testing.T) {
	v, ok := ParseQuizVariant("pattern")
	assert.True(t, ok)
	assert.Equal(t, VariantPattern, v)

	_, ok = ParseQuizVariant("random")
	assert.False(t, ok)
}
