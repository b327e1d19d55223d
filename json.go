package tablefit

import (
	"bytes"
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, v any, opts Options) error {
	return newJSONEncoder(w, opts).Encode(v)
}

func newJSONEncoder(w io.Writer, opts Options) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}
	return enc
}

// marshalJSONElement encodes v as an element of an array written by
// writeJSON: nested lines carry one extra indent and there is no trailing
// newline.
func marshalJSONElement(v any, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts.Indent != "" {
		enc.SetIndent(opts.Indent, opts.Indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
