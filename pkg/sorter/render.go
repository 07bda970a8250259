package sorter

import "strings"

// renderRecord synthesizes the canonical statement text for a record and
// stores it on the record.
func renderRecord(record *ImportRecord) string {
	var b strings.Builder
	b.WriteString("import ")
	if record.DefaultBinding != "" {
		b.WriteString(record.DefaultBinding)
		if len(record.NamedBindings) > 0 {
			b.WriteString(", ")
		} else {
			b.WriteByte(' ')
		}
	}
	if len(record.NamedBindings) > 0 {
		b.WriteString("{ ")
		for i, pair := range record.NamedBindings {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(pair.Display)
		}
		b.WriteString(" } ")
	}
	if !record.IsSideEffect() {
		b.WriteString("from ")
	}
	b.WriteString(record.PathText)
	record.RenderedText = b.String()
	return record.RenderedText
}

// assemble joins rendered records into the final replacement block. Side
// effect imports are pulled out of their buckets, in bucket order, and
// emitted as one trailing section so that from-bearing statements stay
// contiguous.
func (s *sorter) assemble(buckets *bucketSet) string {
	separator := "\n"
	if s.config.SeparateByOrigin {
		separator = "\n\n"
	}
	blocks := make([]string, 0, len(buckets.order)+1)
	var deferred []string
	for _, origin := range buckets.order {
		var lines []string
		for _, record := range buckets.records[origin] {
			if record.IsSideEffect() {
				deferred = append(deferred, record.RenderedText)
				continue
			}
			if s.config.SeparateMultiline && record.HasMultilineNamedBindings && len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, record.RenderedText)
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	if len(deferred) > 0 {
		blocks = append(blocks, strings.Join(deferred, "\n"))
	}
	return strings.Join(blocks, separator)
}
