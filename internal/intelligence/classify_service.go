package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/llm"
)

// Classifier turns one captured inbox text into a structured
// classification, given the current project hierarchy and tag
// vocabulary as context. It never mutates the aggregate; failures
// surface as errors for the caller to present.
type Classifier interface {
	ClassifyItem(ctx context.Context, text string, content *domain.DatasetContent) (*domain.Classification, error)
}

type classifier struct {
	client llm.Client
}

// NewClassifier creates a Classifier backed by a model client.
func NewClassifier(client llm.Client) Classifier {
	return &classifier{client: client}
}

func (c *classifier) ClassifyItem(ctx context.Context, text string, content *domain.DatasetContent) (*domain.Classification, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: classifySystemPrompt,
		UserPrompt:   buildClassifyPrompt(text, content),
	})
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	result, err := llm.ExtractJSON[domain.Classification](resp.Text, validateClassification)
	if err != nil {
		return nil, fmt.Errorf("extracting classification: %w", err)
	}

	result.EstimatedDuration = domain.NormalizeDuration(result.EstimatedDuration)
	return &result, nil
}

func buildClassifyPrompt(text string, content *domain.DatasetContent) string {
	var b strings.Builder

	b.WriteString("Available projects:\n")
	if len(content.Projects) == 0 {
		b.WriteString("  [NO PROJECTS YET]\n")
	}
	for _, p := range content.Projects {
		fmt.Fprintf(&b, "  - %s\n", p.Name)
	}

	if len(content.Goals) > 0 {
		b.WriteString("\nGoals (projects may belong to one):\n")
		for _, g := range content.Goals {
			fmt.Fprintf(&b, "  - %s\n", g.Name)
		}
	}

	b.WriteString("\nAllowed tags:\n")
	for _, tag := range allowedTags(content) {
		fmt.Fprintf(&b, "  - %s\n", tag)
	}

	b.WriteString("\nClassify this captured text:\n")
	fmt.Fprintf(&b, "  %s\n", text)

	return b.String()
}

// allowedTags is the union of tags already in use, or the default
// vocabulary for an untagged dataset.
func allowedTags(content *domain.DatasetContent) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range content.Projects {
		for _, item := range p.Items {
			for _, tag := range item.Base().Tags {
				if !seen[tag] {
					seen[tag] = true
					tags = append(tags, tag)
				}
			}
		}
	}
	if len(tags) == 0 {
		return defaultTags
	}
	return tags
}

func validateClassification(c domain.Classification) error {
	if c.Category == "" {
		return fmt.Errorf("category field is required")
	}
	if c.SuggestedProject == "" && c.SuggestedNewProjectName == "" {
		return fmt.Errorf("either suggested_project or suggested_new_project_name is required")
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("confidence must be between 0 and 1, got %v", c.Confidence)
	}
	return nil
}
