package entities

// CategoryAll is the pseudo-tag that selects every project card.
const CategoryAll = "all"

// Project is a single portfolio card. It belongs to exactly one category.
type Project struct {
	ID          string `yaml:"id"`          // stable identifier used in logs
	Title       string `yaml:"title"`       // card heading
	Category    string `yaml:"category"`    // filter tag, e.g. "web", "data"
	Summary     string `yaml:"summary"`     // one-line description
	Description string `yaml:"description"` // long description, shown in the large font layout
	URL         string `yaml:"url"`         // optional link to the project
}
