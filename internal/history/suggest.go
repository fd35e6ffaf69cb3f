// suggest.go derives completion suggestions from history plus the known
// contexts, projects, and tags of the current snapshot.
//
// Separated from history.go because suggestion blending has its own fixed
// priority order and caps, independent of how history is recorded.
package history

// Suggestion kinds, in blend priority order.
const (
	KindHistory = "history"
	KindContext = "context"
	KindProject = "project"
	KindTag     = "tag"
)

// Per-kind caps and the overall suggestion cap.
const (
	maxSuggestions = 10
	maxHistory     = 5
	maxContexts    = 3
	maxProjects    = 3
	maxTags        = 3
)

// Suggestion is one proposed completion. Context names carry an "@"
// prefix; project titles and tags carry "#".
type Suggestion struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// SuggestionData supplies the non-history suggestion sources, usually
// drawn from the current entity snapshot.
type SuggestionData struct {
	Contexts []string // context names
	Projects []string // project titles
	Tags     []string
}

// Suggestions blends history entries matching the partial query with
// known context, project, and tag names, in that fixed priority order,
// capped at 10 in total. Matching is case-insensitive containment.
func (h *History) Suggestions(query string, data SuggestionData) []Suggestion {
	var out []Suggestion

	added := 0
	for _, it := range h.items {
		if added == maxHistory || len(out) == maxSuggestions {
			break
		}
		if stringsContainsFold(it.Query, query) {
			out = append(out, Suggestion{Text: it.Query, Kind: KindHistory})
			added++
		}
	}

	added = 0
	for _, name := range data.Contexts {
		if added == maxContexts || len(out) == maxSuggestions {
			break
		}
		if stringsContainsFold(name, query) {
			out = append(out, Suggestion{Text: "@" + name, Kind: KindContext})
			added++
		}
	}

	added = 0
	for _, title := range data.Projects {
		if added == maxProjects || len(out) == maxSuggestions {
			break
		}
		if stringsContainsFold(title, query) {
			out = append(out, Suggestion{Text: "#" + title, Kind: KindProject})
			added++
		}
	}

	added = 0
	for _, tag := range data.Tags {
		if added == maxTags || len(out) == maxSuggestions {
			break
		}
		if stringsContainsFold(tag, query) {
			out = append(out, Suggestion{Text: "#" + tag, Kind: KindTag})
			added++
		}
	}

	return out
}
