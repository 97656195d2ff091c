package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MikeBiancalana/widgetkit/internal/tui/components"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatTSV  OutputFormat = "tsv"
	FormatCSV  OutputFormat = "csv"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "tsv":
		return FormatTSV, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, tsv, csv)", s)
	}
}

func formatOptions(w io.Writer, options []components.Option, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(options)
	case FormatCSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{"VALUE", "LABEL"})
		for _, o := range options {
			cw.Write([]string{o.Value, o.Label})
		}
		cw.Flush()
		return cw.Error()
	case FormatTSV:
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
		fmt.Fprintln(tw, "VALUE\tLABEL")
		for _, o := range options {
			fmt.Fprintf(tw, "%s\t%s\n", o.Value, o.Label)
		}
		return tw.Flush()
	default:
		for _, o := range options {
			fmt.Fprintf(w, "%s  %s\n", o.Label, o.Value)
		}
		return nil
	}
}

// pageWindow is the JSON form of a pagination window.
type pageWindow struct {
	Count  int      `json:"count"`
	Page   int      `json:"page"`
	Tokens []string `json:"tokens"`
}

func formatWindow(w io.Writer, count, page int, tokens []components.PageToken, format OutputFormat) error {
	switch format {
	case FormatJSON:
		out := pageWindow{Count: count, Page: page, Tokens: make([]string, len(tokens))}
		for i, t := range tokens {
			out.Tokens[i] = t.String()
		}
		return json.NewEncoder(w).Encode(out)
	case FormatText:
		parts := make([]string, len(tokens))
		for i, t := range tokens {
			parts[i] = t.String()
			if t.Page == page {
				parts[i] = "[" + parts[i] + "]"
			}
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, " "))
		return err
	default:
		return fmt.Errorf("unsupported format for pages: %s (supported: text, json)", format)
	}
}
