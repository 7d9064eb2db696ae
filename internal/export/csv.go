// Package export turns aggregated entry trees into the two external
// text formats, CSV and Markdown. Both formatters are pure: they read
// the view and never touch the store.
package export

import (
	"strings"

	"github.com/scobrodev/logbook/pkg/types"
)

// csvHeader is the fixed column set; one data row per item, not per
// entry.
const csvHeader = "Date,Time,Type,Content,Project,Tags,Jira,People"

// multiValueSep joins multi-valued fields (tags, jira keys, people)
// inside a single CSV cell.
const multiValueSep = ";"

// CSV renders the aggregated entries as CSV text. Date and Time come
// from splitting the entry timestamp; the free-text fields are always
// quoted, with embedded double quotes doubled, so content containing
// commas, quotes, or newlines survives a compliant reader. An absent
// project renders as an empty string.
func CSV(entries []types.EntryWithItems) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, ew := range entries {
		date := ew.Entry.Timestamp.UTC().Format("2006-01-02")
		clock := ew.Entry.Timestamp.UTC().Format("15:04:05")

		for _, iw := range ew.Items {
			project := ""
			if iw.Item.Project != nil {
				project = *iw.Item.Project
			}

			b.WriteString(date)
			b.WriteByte(',')
			b.WriteString(clock)
			b.WriteByte(',')
			b.WriteString(iw.Item.ItemType)
			b.WriteByte(',')
			b.WriteString(quote(iw.Item.Content))
			b.WriteByte(',')
			b.WriteString(quote(project))
			b.WriteByte(',')
			b.WriteString(quote(strings.Join(tagNames(iw.Tags), multiValueSep)))
			b.WriteByte(',')
			b.WriteString(quote(strings.Join(jiraKeys(iw.JiraRefs), multiValueSep)))
			b.WriteByte(',')
			b.WriteString(quote(strings.Join(personNames(iw.People), multiValueSep)))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// quote wraps a field in double quotes, doubling any embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func tagNames(tags []types.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}

func personNames(people []types.Person) []string {
	names := make([]string, len(people))
	for i, p := range people {
		names[i] = p.Name
	}
	return names
}

func jiraKeys(refs []types.JiraRef) []string {
	keys := make([]string, len(refs))
	for i, r := range refs {
		keys[i] = r.JiraKey
	}
	return keys
}
