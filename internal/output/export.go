package output

import "github.com/areino/validate-taegis-parser/internal/taegis"

// ExportOriginalData writes each event's original_data value as one line,
// in input order. Events without the field are silently skipped and not
// counted. The returned count equals the number of lines written; any write
// error aborts the export.
func ExportOriginalData(w *Writer, evts []taegis.Event) (int, error) {
	count := 0
	for _, e := range evts {
		if e.OriginalData == nil {
			continue
		}
		if err := w.WriteLine(*e.OriginalData); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
