package format

import (
	"fmt"
	"strings"

	"packlist/internal/model"
	"packlist/internal/preset"
)

// Summary renders the shareable plain-text view of a document: header with
// mode label and packed count, then items grouped by category in document
// order, each prefixed with a done/not-done marker. Categories without items
// are omitted.
func Summary(d *model.Document) string {
	if d == nil {
		return ""
	}
	p := d.Progress()

	var b strings.Builder
	fmt.Fprintf(&b, "🧳 %s — %d/%d packed\n", preset.Lookup(d.Mode).Label, p.Done, p.Total)

	for _, c := range d.Cats {
		lines := make([]string, 0, 4)
		for _, it := range d.Items {
			if it.Cat != c.ID {
				continue
			}
			mark := "[ ]"
			if it.Done {
				mark = "[x]"
			}
			name := it.Name
			if it.Emoji != "" {
				name = it.Emoji + " " + name
			}
			lines = append(lines, fmt.Sprintf("  %s %s", mark, name))
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString("\n")
		if c.Emoji != "" {
			fmt.Fprintf(&b, "%s %s\n", c.Emoji, c.Name)
		} else {
			fmt.Fprintf(&b, "%s\n", c.Name)
		}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
