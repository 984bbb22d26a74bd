package routing

import "github.com/buildflow/client/internal/core/domain"

// MenuEntry is one primary-menu item.
type MenuEntry struct {
	Path  string
	Label string
}

// MenuFor derives the ordered menu for a role from the authoritative route
// table: every labelled route the role may open, in table order. Pure
// function of the role.
func MenuFor(role domain.Role) []MenuEntry {
	var menu []MenuEntry
	for _, r := range routes {
		if r.Label == "" || !r.Allows(role) {
			continue
		}
		menu = append(menu, MenuEntry{Path: r.Path, Label: r.Label})
	}
	return menu
}
