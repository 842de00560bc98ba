package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/intray/internal/domain"
)

// resolveProject accepts a numeric project id or an exact project name.
func resolveProject(app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project is required")
	}
	if id, err := strconv.Atoi(input); err == nil {
		if p := app.Repo.FindProject(id); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("project not found: #%d", id)
	}
	if p := app.Repo.FindProjectByName(input); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("project not found: %q", input)
}

// resolveItemID expands an item id prefix to the full id. Exact matches
// win; a prefix must be unambiguous.
func resolveItemID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	if item, _ := app.Repo.FindItem(input); item != nil {
		return input, nil
	}

	var matches []string
	for _, p := range app.Repo.Content().Projects {
		for _, item := range p.Items {
			if strings.HasPrefix(item.Base().ID, input) {
				matches = append(matches, item.Base().ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveInboxItem accepts a 1-based inbox position or the captured
// text itself.
func resolveInboxItem(app *App, input string) (string, error) {
	inbox := app.Triage.InboxItems()
	if pos, err := strconv.Atoi(input); err == nil {
		if pos < 1 || pos > len(inbox) {
			return "", fmt.Errorf("inbox position %d out of range (1-%d)", pos, len(inbox))
		}
		return inbox[pos-1], nil
	}
	for _, text := range inbox {
		if text == input {
			return text, nil
		}
	}
	return "", fmt.Errorf("inbox item not found: %q", input)
}
