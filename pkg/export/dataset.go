package export

import "fmt"

// Dataset is a list screen flattened into named columns.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Records returns the rows as cells in header order. Keys outside Headers
// are dropped and missing ones are blank.
func (d Dataset) Records() [][]string {
	out := make([][]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		cells := make([]string, len(d.Headers))
		for i, h := range d.Headers {
			cells[i] = row[h]
		}
		out = append(out, cells)
	}
	return out
}

func (d Dataset) check(format Format) error {
	if len(d.Headers) == 0 {
		return fmt.Errorf("%s export needs at least one column", format)
	}
	return nil
}
