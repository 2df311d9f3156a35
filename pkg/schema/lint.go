package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Issue is a problem found by Lint.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// maxSuggestDistance bounds how far a typo may be from a known tag.
const maxSuggestDistance = 3

// Lint reports unknown component tags (with the closest known tag when one
// is near enough) and tab panes that are not direct children of a FormTab.
func Lint(root *Schema) []Issue {
	var issues []Issue
	root.Walk(func(node *Schema, path []string) {
		where := strings.Join(path, ".")
		if where == "" {
			where = "<root>"
		}
		kind := node.Kind()
		if kind == KindUnknown {
			msg := fmt.Sprintf("unknown component %q", node.Component)
			if s := Suggest(node.Component); s != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}
			issues = append(issues, Issue{Path: where, Message: msg})
		}
		if kind == KindTabPane && node.Parent != nil && node.Parent.Kind() != KindFormTab {
			issues = append(issues, Issue{Path: where, Message: "tab pane outside of a FormTab is ignored"})
		}
	})
	return issues
}

// Suggest returns the registered component closest to tag, or "".
func Suggest(tag string) string {
	names := make([]string, 0, len(Components))
	for name := range Components {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestDist := "", maxSuggestDistance+1
	for _, name := range names {
		d := levenshtein.ComputeDistance(strings.ToLower(tag), strings.ToLower(name))
		if d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
