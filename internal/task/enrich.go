package task

import "unicode/utf8"

// Enrich derives output records from validated records. It is total: every
// input record yields exactly one output record, an empty input yields an
// empty output, and order is preserved. NameLength counts the code points of
// the untrimmed name.
func Enrich(records []Record) []OutputRecord {
	out := make([]OutputRecord, 0, len(records))
	for _, r := range records {
		out = append(out, OutputRecord{
			ID:         r.ID,
			Name:       r.Name,
			Value:      r.Value,
			Processed:  true,
			NameLength: utf8.RuneCountInString(r.Name),
		})
	}
	return out
}
