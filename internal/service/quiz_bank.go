package service

import "github.com/aliskhannn/portfolio-bot/internal/domain/entities"

// Teaching style labels.
const (
	styleFacilitator     = "Facilitator"
	styleFormalAuthority = "Formal Authority"
	stylePersonalModel   = "Personal Model"
	styleExpert          = "Expert"
	styleDelegator       = "Delegator"
	styleHybrid          = "Hybrid"
)

var teachingStyleDescriptions = map[string]string{
	styleFacilitator:     "You focus on guiding students to discover knowledge themselves. You encourage critical thinking and help students develop problem-solving skills through questioning and discussion.",
	styleFormalAuthority: "You provide clear structure and expectations. Students know exactly what is expected of them, and you maintain a well-organized learning environment with clear rules and procedures.",
	stylePersonalModel:   "You lead by example and demonstrate skills and processes. Students learn by observing and mimicking your approach, and you provide hands-on guidance and coaching.",
	styleExpert:          "You share your deep knowledge and expertise with students. You focus on transmitting information effectively and helping students understand complex concepts through detailed explanations.",
	styleDelegator:       "You encourage student independence and self-directed learning. You provide resources and support while allowing students to take ownership of their learning journey.",
	styleHybrid:          "You flexibly combine multiple teaching approaches based on the situation and student needs. You adapt your style to best serve different learning objectives and student preferences.",
}

// majorityQuiz asks six questions. Every question offers one option per
// style, in label order.
func majorityQuiz() *entities.QuizDefinition {
	return &entities.QuizDefinition{
		Variant: entities.VariantMajority,
		Title:   "Teaching Style Quiz",
		Questions: []entities.QuizQuestion{
			majorityQuestion("q1", "How do you usually introduce a new topic?", [6]string{
				"Pose a problem and let the class explore it",
				"Set out the objectives and the rules for the unit",
				"Work through an example in front of the class",
				"Give a detailed explanation of the key ideas",
				"Hand out resources and let students plan their approach",
				"It depends on the topic and the class",
			}),
			majorityQuestion("q2", "A student is stuck. What do you do first?", [6]string{
				"Ask questions that point them in the right direction",
				"Remind them of the steps we agreed on",
				"Show them how I would approach it",
				"Explain the underlying concept again in more depth",
				"Point them to resources they can use on their own",
				"It depends on the student and the task",
			}),
			majorityQuestion("q3", "What does a well-run classroom look like to you?", [6]string{
				"Lively discussion between students",
				"Clear procedures that everyone follows",
				"Students copying a routine I model for them",
				"Students listening closely to an expert",
				"Groups working independently on their own projects",
				"Different setups for different lessons",
			}),
			majorityQuestion("q4", "How do you prefer to assess learning?", [6]string{
				"Open questions discussed in small groups",
				"Formal tests against published criteria",
				"Practical tasks that repeat a demonstrated skill",
				"Detailed written answers that show understanding",
				"Student-led projects with self-assessment",
				"A mix of methods chosen per unit",
			}),
			majorityQuestion("q5", "Which feedback from students would please you most?", [6]string{
				"\"You made me think for myself\"",
				"\"We always knew what was expected\"",
				"\"I learned by watching how you do it\"",
				"\"You really know your subject\"",
				"\"You trusted us to run with it\"",
				"\"You adapted to what we needed\"",
			}),
			majorityQuestion("q6", "How much say do students have in what they learn?", [6]string{
				"A lot, as long as they can argue for it",
				"Very little, the syllabus sets the path",
				"Some, once they have seen a model answer",
				"Little, I decide what matters in the subject",
				"A lot, they choose topics and pace",
				"It changes from class to class",
			}),
		},
		Classifier: entities.MajorityClassifier{
			Labels:       majorityStyles,
			Default:      styleHybrid,
			Descriptions: teachingStyleDescriptions,
		},
	}
}

// majorityStyles is the label order of the majority quiz. Ties go to the
// earlier style.
var majorityStyles = []string{
	styleFacilitator,
	styleFormalAuthority,
	stylePersonalModel,
	styleExpert,
	styleDelegator,
	styleHybrid,
}

// majorityQuestion pairs texts[i] with majorityStyles[i].
func majorityQuestion(id, text string, texts [6]string) entities.QuizQuestion {
	options := make([]entities.QuizOption, len(majorityStyles))
	for i, style := range majorityStyles {
		options[i] = entities.QuizOption{Text: texts[i], Token: style}
	}
	return entities.QuizQuestion{ID: id, Text: text, Options: options}
}

// Tokens of the pattern quiz.
const (
	tokenStructure     = "structure"
	tokenDiscovery     = "discovery"
	tokenDemonstration = "demonstration"
	tokenLecture       = "lecture"
	tokenDiscussion    = "discussion"
	tokenPractice      = "practice"
	tokenGuided        = "guided"
	tokenCollaborative = "collaborative"
	tokenIndependent   = "independent"
)

// patternQuiz asks three questions and matches token pairs in order.
func patternQuiz() *entities.QuizDefinition {
	return &entities.QuizDefinition{
		Variant: entities.VariantPattern,
		Title:   "Quick Teaching Style Check",
		Questions: []entities.QuizQuestion{
			{
				ID:   "q1",
				Text: "A lesson works best when it starts with…",
				Options: []entities.QuizOption{
					{Text: "A clear plan on the board", Token: tokenStructure},
					{Text: "An open question", Token: tokenDiscovery},
					{Text: "A live demonstration", Token: tokenDemonstration},
				},
			},
			{
				ID:   "q2",
				Text: "Most of the lesson time is spent on…",
				Options: []entities.QuizOption{
					{Text: "Explanation from the teacher", Token: tokenLecture},
					{Text: "Class discussion", Token: tokenDiscussion},
					{Text: "Hands-on practice", Token: tokenPractice},
				},
			},
			{
				ID:   "q3",
				Text: "Students do their best work when they are…",
				Options: []entities.QuizOption{
					{Text: "Guided step by step", Token: tokenGuided},
					{Text: "Working in groups", Token: tokenCollaborative},
					{Text: "Left to work independently", Token: tokenIndependent},
				},
			},
		},
		Classifier: entities.PatternClassifier{
			Tokens: []string{
				tokenStructure, tokenDiscovery, tokenDemonstration,
				tokenLecture, tokenDiscussion, tokenPractice,
				tokenGuided, tokenCollaborative, tokenIndependent,
			},
			// Rules overlap (discovery appears twice, structure twice), so the
			// order below decides the label.
			Rules: []entities.PatternRule{
				{First: tokenDiscovery, Second: tokenIndependent, Label: styleDelegator},
				{First: tokenDiscovery, Second: tokenDiscussion, Label: styleFacilitator},
				{First: tokenDemonstration, Second: tokenPractice, Label: stylePersonalModel},
				{First: tokenStructure, Second: tokenGuided, Label: styleFormalAuthority},
				{First: tokenStructure, Second: tokenLecture, Label: styleExpert},
				{First: tokenDiscussion, Second: tokenCollaborative, Label: styleFacilitator},
			},
			Fallback:     entities.TokenRule{Token: tokenLecture, Label: styleExpert},
			Default:      styleHybrid,
			Descriptions: teachingStyleDescriptions,
		},
	}
}
