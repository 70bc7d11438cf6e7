package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.confplan.dev/vplan/value"
)

// JSON decodes a single JSON value from input into a [value.Value],
// preserving object key order via [json.Decoder.Token] streaming rather
// than decoding into map[string]any, whose key order Go does not preserve.
func JSON(input []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}

	return tokenToValue(dec, tok)
}

func tokenToValue(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return value.Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case nil:
		return value.None(), nil
	case bool:
		return value.Bool(t), nil
	case json.Number:
		return numberToValue(t), nil
	case string:
		return value.Str(t), nil
	default:
		return value.Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func numberToValue(n json.Number) value.Value {
	if i, err := n.Int64(); err == nil {
		return value.Int(i)
	}

	f, _ := n.Float64()

	return value.Float(f)
}

func decodeJSONObject(dec *json.Decoder) (value.Value, error) {
	d := &value.Dict{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return value.Value{}, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("expected object key, got %v", keyTok)
		}

		v, err := decodeJSONValue(dec)
		if err != nil {
			return value.Value{}, err
		}

		d.Upsert(key, v)
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return value.Value{}, err
	}

	return value.NewDict(d), nil
}

func decodeJSONArray(dec *json.Decoder) (value.Value, error) {
	l := &value.List{}

	for dec.More() {
		v, err := decodeJSONValue(dec)
		if err != nil {
			return value.Value{}, err
		}

		l.Append(v)
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return value.Value{}, err
	}

	return value.NewList(l), nil
}
