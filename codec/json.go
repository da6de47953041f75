package codec

import (
	"bytes"

	json "github.com/goccy/go-json"
	sieve "github.com/sievekit/sieve"
)

// ParseJSON decodes a JSON document into the value model. Numbers decode as
// json.Number so integer precision survives into coercion.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// DumpJSON lowers v and encodes the primitive tree as UTF-8 JSON with
// standard escaping. Decimals become strings, preserving precision.
func DumpJSON(v any) ([]byte, error) {
	return json.Marshal(Lower(v))
}

// DumpResultJSON encodes a Result's dump form.
func DumpResultJSON(r sieve.Result) ([]byte, error) {
	return json.Marshal(DumpResult(r))
}
