package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/screen"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
	"github.com/noah-isme/sigue-client/pkg/export"
)

func printTable(out io.Writer, data export.Dataset) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(data.Headers, "\t"))
	for _, row := range data.Rows {
		cells := make([]string, len(data.Headers))
		for i, h := range data.Headers {
			cells[i] = row[h]
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printNotice(out io.Writer, n screen.Notice) {
	if n.Severity == screen.SeveritySilent {
		return
	}
	fmt.Fprintf(out, "%s: %s\n", n.Title, n.Message)
}

// applyEdits copies in and applies field=value pairs. Picks replace the
// whole list of their field; an empty value clears it.
func applyEdits(in form.Input, sets, picks []string) (form.Input, error) {
	out := in.Clone()
	for _, raw := range sets {
		field, value, err := splitPair("--set", raw)
		if err != nil {
			return form.Input{}, err
		}
		out = out.Set(field, value)
	}
	cleared := map[string]bool{}
	for _, raw := range picks {
		field, value, err := splitPair("--pick", raw)
		if err != nil {
			return form.Input{}, err
		}
		if !cleared[field] {
			delete(out.Lists, field)
			cleared[field] = true
		}
		if value == "" {
			continue
		}
		out = out.Pick(field, value)
	}
	return out, nil
}

func splitPair(flag, raw string) (string, string, error) {
	field, value, ok := strings.Cut(raw, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return "", "", appErrors.Clone(appErrors.ErrInvalidFormat, fmt.Sprintf("%s %q must look like field=value", flag, raw))
	}
	return field, value, nil
}
