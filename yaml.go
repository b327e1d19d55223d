package tablefit

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, v any, opts Options) error {
	enc := yaml.NewEncoder(w)
	if opts.Indent != "" {
		enc.SetIndent(len(opts.Indent))
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
