package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/picatz/fetchfile"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"golang.org/x/term"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printDocument writes doc to w as JSON or structured text. Output to a
// terminal is colored.
func printDocument(w io.Writer, doc any, output fetchfile.Format, style string) error {
	switch output {
	case fetchfile.FormatJSON:
		data, err := fetchfile.JSON[any]{}.Encode(stringKeys(doc))
		if err != nil {
			return err
		}
		if isTerminal(w) {
			data = pretty.Color(data, nil)
		}
		_, err = w.Write(data)
		return err
	case fetchfile.FormatStructuredText:
		data, err := fetchfile.StructuredText[any]{}.Encode(doc)
		if err != nil {
			return err
		}
		if isTerminal(w) {
			rendered, err := glamour.Render("```yaml\n"+string(data)+"```\n", style)
			if err != nil {
				return fmt.Errorf("failed to render document: %w", err)
			}
			_, err = io.WriteString(w, rendered)
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("cannot print %s documents, use json or text", output)
	}
}

// printQuery writes the part of doc matched by a gjson path.
func printQuery(w io.Writer, doc any, query string) error {
	data, err := fetchfile.JSON[any]{}.Encode(stringKeys(doc))
	if err != nil {
		return err
	}

	result := gjson.GetBytes(data, query)
	if !result.Exists() {
		return fmt.Errorf("no value matches query %q", query)
	}

	if !result.IsObject() && !result.IsArray() {
		_, err = fmt.Fprintln(w, result.String())
		return err
	}

	out := pretty.Pretty([]byte(result.Raw))
	if isTerminal(w) {
		out = pretty.Color(out, nil)
	}
	_, err = w.Write(out)
	return err
}

// stringKeys converts the keys of every mapping in v to strings. Structured
// text and binary documents can have mappings keyed by numbers or booleans,
// which JSON cannot represent.
func stringKeys(v any) any {
	switch v := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[k] = stringKeys(e)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, e := range v {
			s[i] = stringKeys(e)
		}
		return s
	default:
		return v
	}
}
