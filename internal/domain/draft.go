package domain

// Classification category values understood by the triage engine. Any
// other category commits as a plain task.
const (
	CategoryTask      = "task"
	CategoryResource  = "resource"
	CategoryShopping  = "shopping"
	CategoryReference = "reference"
	CategoryIncubate  = "incubate"
)

// Classification is the structured outcome of the external classification
// provider for a single captured text.
type Classification struct {
	Category                string   `json:"category"`
	SuggestedProject        string   `json:"suggested_project"`
	Confidence              float64  `json:"confidence"`
	Reasoning               string   `json:"reasoning"`
	ExtractedTags           []string `json:"extracted_tags"`
	EstimatedDuration       string   `json:"estimated_duration"`
	RefinedName             string   `json:"refined_name"`
	Notes                   string   `json:"notes"`
	SuggestedNewProjectName string   `json:"suggested_new_project_name"`
	AlternativeProjects     []string `json:"alternative_projects"`
}

// DraftItem pairs a captured inbox text with its classification result.
// It is transient: created per inbox head item, converted to a concrete
// ProjectItem on commit, then discarded. Never persisted.
type DraftItem struct {
	Text           string
	Classification Classification
}

// DisplayName prefers the classification's refined name, falling back to
// the original captured text.
func (d *DraftItem) DisplayName() string {
	if d.Classification.RefinedName != "" {
		return d.Classification.RefinedName
	}
	return d.Text
}
