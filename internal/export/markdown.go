package export

import (
	"strings"

	"github.com/scobrodev/logbook/pkg/types"
)

// typeEmoji marks each item block with a glyph keyed by item type.
var typeEmoji = map[string]string{
	types.ItemTypeAction:   "🔴",
	types.ItemTypeDecision: "🔵",
	types.ItemTypeNote:     "🟢",
	types.ItemTypeMeeting:  "🟣",
}

// defaultEmoji covers free-form item types.
const defaultEmoji = "📝"

// Markdown renders the aggregated entries as a Markdown document: one
// level-two heading per entry, one level-three block per item, optional
// Project/Tags/Jira/People lines, and a horizontal rule closing each
// item block.
func Markdown(entries []types.EntryWithItems) string {
	var b strings.Builder
	b.WriteString("# Logbook Export\n\n")

	for _, ew := range entries {
		b.WriteString("## ")
		b.WriteString(ew.Entry.Timestamp.UTC().Format("2006-01-02 15:04:05"))
		b.WriteString("\n\n")

		for _, iw := range ew.Items {
			emoji, ok := typeEmoji[iw.Item.ItemType]
			if !ok {
				emoji = defaultEmoji
			}

			b.WriteString("### ")
			b.WriteString(emoji)
			b.WriteByte(' ')
			b.WriteString(iw.Item.ItemType)
			b.WriteByte('\n')
			b.WriteString(iw.Item.Content)
			b.WriteString("\n\n")

			if iw.Item.Project != nil && *iw.Item.Project != "" {
				b.WriteString("**Project:** 📂 ")
				b.WriteString(*iw.Item.Project)
				b.WriteString("\n\n")
			}
			if len(iw.Tags) > 0 {
				b.WriteString("**Tags:** 🏷 ")
				b.WriteString(strings.Join(tagNames(iw.Tags), ", "))
				b.WriteString("\n\n")
			}
			if len(iw.JiraRefs) > 0 {
				b.WriteString("**Jira:** 🧩 ")
				b.WriteString(strings.Join(jiraKeys(iw.JiraRefs), ", "))
				b.WriteString("\n\n")
			}
			if len(iw.People) > 0 {
				b.WriteString("**People:** 👤 ")
				b.WriteString(strings.Join(personNames(iw.People), ", "))
				b.WriteString("\n\n")
			}

			b.WriteString("---\n\n")
		}
	}
	return b.String()
}
