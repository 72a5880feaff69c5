package entities

// MajorityClassifier picks the label with the strictly highest count.
//
// Labels are scanned in order with a strict ">" comparison starting from zero,
// so the first label to reach the highest count wins a tie. When nothing
// scores, Default is returned.
type MajorityClassifier struct {
	Labels       []string
	Default      string
	Descriptions map[string]string
}

// Classify implements Classifier.
func (c MajorityClassifier) Classify(answers map[string]string) QuizResult {
	scores := make(map[string]int, len(c.Labels))
	for _, label := range c.Labels {
		scores[label] = 0
	}

	for _, token := range answers {
		if _, known := scores[token]; known {
			scores[token]++
		}
	}

	top, maxScore := c.Default, 0
	for _, label := range c.Labels {
		if scores[label] > maxScore {
			top, maxScore = label, scores[label]
		}
	}

	return QuizResult{
		Label:       top,
		Description: c.Descriptions[top],
		Score:       maxScore,
		Scores:      scores,
	}
}

// PatternRule matches when both tokens were chosen at least once.
type PatternRule struct {
	First  string
	Second string
	Label  string
}

// TokenRule matches when Token was chosen at least once.
type TokenRule struct {
	Token string
	Label string
}

// PatternClassifier evaluates Rules in order and returns the first match.
// Rules may overlap, so their order is part of the scoring policy.
type PatternClassifier struct {
	Tokens       []string
	Rules        []PatternRule
	Fallback     TokenRule
	Default      string
	Descriptions map[string]string
}

// Classify implements Classifier.
func (c PatternClassifier) Classify(answers map[string]string) QuizResult {
	scores := make(map[string]int, len(c.Tokens))
	for _, token := range c.Tokens {
		scores[token] = 0
	}

	for _, token := range answers {
		if _, known := scores[token]; known {
			scores[token]++
		}
	}

	result := func(label string, score int) QuizResult {
		return QuizResult{
			Label:       label,
			Description: c.Descriptions[label],
			Score:       score,
			Scores:      scores,
		}
	}

	for _, rule := range c.Rules {
		if scores[rule.First] >= 1 && scores[rule.Second] >= 1 {
			return result(rule.Label, scores[rule.First]+scores[rule.Second])
		}
	}

	if c.Fallback.Token != "" && scores[c.Fallback.Token] >= 1 {
		return result(c.Fallback.Label, scores[c.Fallback.Token])
	}

	return result(c.Default, 0)
}
