package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/service"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// StatusStyle returns the style used for a project status.
func StatusStyle(status domain.ProjectStatus) lipgloss.Style {
	switch status {
	case domain.ProjectActive:
		return StyleGreen
	case domain.ProjectOnHold:
		return StyleYellow
	case domain.ProjectCompleted:
		return StyleDim
	default:
		return StyleFg
	}
}

// FormatInbox renders the captured texts as a numbered list.
func FormatInbox(items []string) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Inbox (%d)", len(items))))
	b.WriteString("\n")
	for i, text := range items {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), text)
	}
	return b.String()
}

// FormatProjectList renders projects grouped under their goals, with
// goal-less projects in a trailing group.
func FormatProjectList(projects []*domain.Project, goals []*domain.Goal) string {
	byGoal := make(map[string][]*domain.Project)
	for _, p := range projects {
		byGoal[p.GoalID] = append(byGoal[p.GoalID], p)
	}
	for _, group := range byGoal {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SortOrder < group[j].SortOrder
		})
	}

	var b strings.Builder
	for _, g := range goals {
		group := byGoal[g.ID]
		if len(group) == 0 {
			continue
		}
		b.WriteString(Header(g.Name))
		b.WriteString("\n")
		writeProjectGroup(&b, group)
	}
	if orphans := byGoal[""]; len(orphans) > 0 {
		b.WriteString(Header("No Goal"))
		b.WriteString("\n")
		writeProjectGroup(&b, orphans)
	}
	return b.String()
}

func writeProjectGroup(b *strings.Builder, group []*domain.Project) {
	for _, p := range group {
		status := StatusStyle(p.Status).Render(string(p.Status))
		fmt.Fprintf(b, "%s %s %s %s\n",
			Dim(fmt.Sprintf("#%d", p.ID)),
			Bold(p.Name),
			status,
			Dim(fmt.Sprintf("(%d items)", len(p.Items))))
	}
	b.WriteString("\n")
}

// FormatGoalList renders goals with their project counts.
func FormatGoalList(goals []*domain.Goal, projectCounts map[string]int) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Goals (%d)", len(goals))))
	b.WriteString("\n")
	for _, g := range goals {
		status := StyleGreen
		if g.Status == domain.GoalSomeday {
			status = StyleYellow
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			Bold(g.Name),
			status.Render(string(g.Status)),
			Dim(fmt.Sprintf("(%d projects)", projectCounts[g.ID])))
		if g.Description != "" {
			fmt.Fprintf(&b, "  %s\n", Dim(g.Description))
		}
	}
	return b.String()
}

// FormatTaskList renders tasks with completion markers and tags.
func FormatTaskList(tasks []*domain.Task, projectOf func(*domain.Task) string) string {
	var b strings.Builder
	for _, t := range tasks {
		marker := StyleDim.Render("[ ]")
		if t.Completed {
			marker = StyleGreen.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", marker, t.Name)
		if t.Duration != "" && t.Duration != domain.DurationUnknown {
			line += " " + StyleBlue.Render(t.Duration)
		}
		if len(t.Tags) > 0 {
			line += " " + StylePurple.Render("#"+strings.Join(t.Tags, " #"))
		}
		if project := projectOf(t); project != "" {
			line += " " + Dim(project)
		}
		line += " " + Dim(shortID(t.ID))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatShoppingList renders unacquired purchases grouped by store.
func FormatShoppingList(list map[string][]service.ShoppingEntry) string {
	stores := make([]string, 0, len(list))
	for store := range list {
		stores = append(stores, store)
	}
	sort.Strings(stores)

	var b strings.Builder
	for _, store := range stores {
		b.WriteString(Header(store))
		b.WriteString("\n")
		for _, entry := range list[store] {
			fmt.Fprintf(&b, "%s %s %s %s\n",
				StyleDim.Render("[ ]"),
				entry.Resource.Name,
				Dim("for "+entry.ProjectName),
				Dim(shortID(entry.Resource.ID)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatClassification renders a draft's suggested disposition.
func FormatClassification(draft *domain.DraftItem) string {
	c := draft.Classification

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold(draft.DisplayName()), Dim(fmt.Sprintf("(%.0f%%)", c.Confidence*100)))
	fmt.Fprintf(&b, "%s %s\n", Dim("category:"), categoryStyle(c.Category).Render(c.Category))
	if c.SuggestedProject != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("project:"), c.SuggestedProject)
	}
	if c.SuggestedNewProjectName != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("new project:"), c.SuggestedNewProjectName)
	}
	if c.EstimatedDuration != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("duration:"), c.EstimatedDuration)
	}
	if len(c.ExtractedTags) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("tags:"), StylePurple.Render(strings.Join(c.ExtractedTags, ", ")))
	}
	if c.Reasoning != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("reasoning:"), Dim(c.Reasoning))
	}
	return RenderBox("Suggestion", strings.TrimRight(b.String(), "\n"))
}

func categoryStyle(category string) lipgloss.Style {
	switch category {
	case domain.CategoryTask:
		return StyleGreen
	case domain.CategoryResource, domain.CategoryShopping:
		return StyleBlue
	case domain.CategoryReference:
		return StylePurple
	case domain.CategoryIncubate:
		return StyleYellow
	default:
		return StyleFg
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
