package flight

import "strings"

// Suggestion is an entry of the form's airport autocomplete list.
type Suggestion struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

var knownAirports = []Suggestion{
	{Name: "Cairo", Code: "CAI"},
	{Name: "New York", Code: "JFK"},
	{Name: "London", Code: "LHR"},
}

const minSuggestQueryLen = 3

// Suggest filters the fixed airport list by a case-insensitive substring of
// the name. Queries shorter than three characters yield nothing.
func Suggest(query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < minSuggestQueryLen {
		return []Suggestion{}
	}

	matches := []Suggestion{}
	for _, s := range knownAirports {
		if strings.Contains(strings.ToLower(s.Name), q) {
			matches = append(matches, s)
		}
	}
	return matches
}
