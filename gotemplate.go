package tablefit

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, items []record) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, item := range items {
		if err := tmpl.Execute(w, item.asMap()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
