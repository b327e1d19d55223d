package tablefit

import "io"

// writeJSONL writes one compact JSON object per line. Indent is ignored so
// every record stays on its own line.
func writeJSONL(w io.Writer, items []record) error {
	enc := newJSONEncoder(w, Options{})
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
