package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/buildflow/client/internal/core/ports"
)

// printNavigator performs redirects the way a terminal can: by telling the
// user where the app took them. Keeping it behind the Navigator port means
// the session and gateway layers never know rendering is a CLI.
type printNavigator struct {
	out io.Writer
}

var _ ports.Navigator = (*printNavigator)(nil)

func (n *printNavigator) NavigateTo(route string) {
	fmt.Fprintf(n.out, "→ %s\n", route)
}

// table renders rows with aligned columns.
func table(out io.Writer, header []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, join(header))
	for _, row := range rows {
		fmt.Fprintln(w, join(row))
	}
	w.Flush()
}

func join(cols []string) string {
	s := ""
	for i, c := range cols {
		if i > 0 {
			s += "\t"
		}
		s += c
	}
	return s
}

func money(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f)
}
