package iterations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/madisonbullard/mcp-server-shortcut/shortcut"
)

// ownerIDs returns the owners of the stories, deduplicated in first-seen order.
func ownerIDs(stories []*shortcut.Story) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, s := range stories {
		for _, id := range s.OwnerIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func formatStoryList(stories []*shortcut.Story, members map[string]*shortcut.Member) string {
	lines := make([]string, 0, len(stories)+1)
	lines = append(lines, fmt.Sprintf("Result (%d stories found):", len(stories)))
	for _, s := range stories {
		lines = append(lines, formatStory(s, members))
	}
	return strings.Join(lines, "\n")
}

func formatStory(s *shortcut.Story, members map[string]*shortcut.Member) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- sc-%d: %s (Type: %s, State: %s, Team: %s, Epic: %s, Iteration: %s",
		s.ID, s.Name, s.StoryType, s.State(), s.Team.Label(), s.Epic.Label(), s.Iteration.Label())

	if owners := mentions(s.OwnerIDs, members); len(owners) > 0 {
		b.WriteString(", Owners: ")
		b.WriteString(strings.Join(owners, ", "))
	}
	b.WriteString(")")
	return b.String()
}

// mentions returns the handles of the resolved owners, in owner order
func mentions(ids []string, members map[string]*shortcut.Member) []string {
	var res []string
	for _, id := range ids {
		if m, ok := members[id]; ok && m != nil {
			res = append(res, m.Mention())
		}
	}
	return res
}

func formatIteration(it *shortcut.Iteration) string {
	lines := []string{
		"Iteration: " + strconv.FormatInt(it.ID, 10),
		"Url: " + it.AppURL,
		"Name: " + it.Name,
		"Start date: " + it.StartDate,
		"End date: " + it.EndDate,
		"Completed: " + yesNo(it.IsCompleted()),
		"Started: " + yesNo(it.IsStarted()),
		"Team: " + it.Team.Label(),
		"",
		"Description:",
		it.Description,
	}
	return strings.Join(lines, "\n")
}

func formatIterationList(iterations []*shortcut.Iteration, total int) string {
	if len(iterations) == 0 {
		return "Result: No iterations found."
	}

	lines := make([]string, 0, len(iterations)+1)
	lines = append(lines, fmt.Sprintf("Result (first %d shown of %d total iterations found):", len(iterations), total))
	for _, it := range iterations {
		lines = append(lines, fmt.Sprintf("- %d: %s (Start date: %s, End date: %s)", it.ID, it.Name, it.StartDate, it.EndDate))
	}
	return strings.Join(lines, "\n")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
