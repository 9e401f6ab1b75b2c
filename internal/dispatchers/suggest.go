package dispatchers

import (
	"sort"
	"strings"
)

// maxTypoDistance is the largest edit distance still treated as a typo.
const maxTypoDistance = 3

// families are the endings that group dialog types, longest first.
var families = []string{"inputbox", "dropdown", "msgbox", "select", "list"}

// normalizeType lowercases name and drops separators, so "drop-down",
// "Drop_Down" and "dropdown" compare equal.
func normalizeType(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// levenshtein returns the edit distance between a and b, ignoring case.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func family(normalized string) string {
	for _, f := range families {
		if strings.HasSuffix(normalized, f) {
			return f
		}
	}
	return ""
}

// variant returns the qualifier before the first hyphen, such as
// "secure" or "standard", or "" for an unqualified name.
func variant(name string) string {
	if i := strings.IndexByte(name, '-'); i > 0 {
		return strings.ToLower(name[:i])
	}
	return ""
}

// related reports whether input names the same kind of dialog as name
// without being a near typo of it: "secure" for "secure-inputbox",
// "yesnomsgbox" for "ok-msgbox".
func related(input, name string) bool {
	in, n := normalizeType(input), normalizeType(name)
	if f := family(in); f != "" && f == family(n) {
		return true
	}
	if v := variant(input); v != "" && v == variant(name) {
		return true
	}
	return len(in) >= 3 && strings.Contains(n, in)
}

type suggestion struct {
	name     string
	distance int
}

// SuggestTypes returns up to maxResults dialog types for a name that is
// not one. Near typos come first, then types of the same family or
// variant; ties sort alphabetically.
func SuggestTypes(input string, root *DispatchNode, maxResults int) []string {
	if root == nil {
		return nil
	}

	in := normalizeType(input)
	var suggestions []suggestion
	for name, node := range root.Children {
		if node.Action == nil || name == input {
			continue
		}
		dist := levenshtein(in, normalizeType(name))
		if dist <= maxTypoDistance || related(input, name) {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
