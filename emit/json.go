package emit

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"go.confplan.dev/vplan/value"
)

// EncodeJSON serializes v as a single JSON document.
func EncodeJSON(v value.Value, opts JSONOptions) (string, error) {
	if opts.SortKeys {
		return encodeJSONSorted(v, opts)
	}

	var buf bytes.Buffer

	w := &jsonWriter{buf: &buf, opts: opts}
	if err := w.write(v, 0); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// EncodeJSONDocuments serializes docs as a single JSON array, one element
// per document, honoring opts uniformly across every element.
func EncodeJSONDocuments(docs []value.Value, opts JSONOptions) (string, error) {
	list := &value.List{}
	for _, d := range docs {
		list.Append(d)
	}

	return EncodeJSON(value.NewList(list), opts)
}

func encodeJSONSorted(v value.Value, opts JSONOptions) (string, error) {
	goVal := toGoValue(v, opts)

	var (
		b   []byte
		err error
	)

	if opts.Indent > 0 {
		b, err = json.MarshalIndent(goVal, "", strings.Repeat(" ", opts.Indent))
	} else {
		b, err = json.Marshal(goVal)
	}

	if err != nil {
		return "", err
	}

	return string(b), nil
}

// toGoValue converts v into native Go types suitable for encoding/json's
// map-sorting marshal path, applying opts' filters along the way.
func toGoValue(v value.Value, opts JSONOptions) any {
	switch {
	case v.IsUndefined(), v.IsFunc():
		return nil
	case v.IsNone():
		return nil
	case v.IsBool():
		return v.Bool()
	case v.IsInt():
		return v.Int()
	case v.IsFloat():
		return v.Float()
	case v.IsUnit():
		return v.Float()
	case v.IsStr():
		return v.Str()
	case v.IsList():
		items := v.List().Items()
		out := make([]any, 0, len(items))

		for _, item := range items {
			if opts.IgnoreNone && item.IsNone() {
				continue
			}

			out = append(out, toGoValue(item, opts))
		}

		return out
	case v.IsConfig():
		return dictToGoValue(configDict(v), opts)
	default:
		return nil
	}
}

func configDict(v value.Value) *value.Dict {
	switch {
	case v.IsDict():
		return v.Dict()
	case v.IsSchema():
		return v.Schema().Config
	default:
		return nil
	}
}

func dictToGoValue(d *value.Dict, opts JSONOptions) map[string]any {
	out := make(map[string]any, d.Len())

	d.Range(func(key string, val value.Value) bool {
		if opts.IgnorePrivate && strings.HasPrefix(key, value.PrivatePrefix) {
			return true
		}

		if opts.IgnoreNone && val.IsNone() {
			return true
		}

		out[key] = toGoValue(val, opts)

		return true
	})

	return out
}

// jsonWriter streams JSON text preserving dict insertion order.
type jsonWriter struct {
	buf  *bytes.Buffer
	opts JSONOptions
}

func (w *jsonWriter) write(v value.Value, depth int) error {
	switch {
	case v.IsUndefined(), v.IsFunc(), v.IsNone():
		w.buf.WriteString("null")
	case v.IsBool():
		w.buf.WriteString(strconv.FormatBool(v.Bool()))
	case v.IsInt():
		w.buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case v.IsFloat(), v.IsUnit():
		w.buf.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case v.IsStr():
		return w.writeJSONString(v.Str())
	case v.IsList():
		return w.writeList(v, depth)
	case v.IsConfig():
		return w.writeDict(configDict(v), depth)
	}

	return nil
}

func (w *jsonWriter) writeJSONString(s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	w.buf.Write(b)

	return nil
}

func (w *jsonWriter) writeList(v value.Value, depth int) error {
	items := v.List().Items()

	w.buf.WriteByte('[')

	first := true

	for _, item := range items {
		if w.opts.IgnoreNone && item.IsNone() {
			continue
		}

		if !first {
			w.buf.WriteByte(',')
		}

		first = false

		w.newlineIndent(depth + 1)

		if err := w.write(item, depth+1); err != nil {
			return err
		}
	}

	if !first {
		w.newlineIndent(depth)
	}

	w.buf.WriteByte(']')

	return nil
}

func (w *jsonWriter) writeDict(d *value.Dict, depth int) error {
	w.buf.WriteByte('{')

	first := true

	var err error

	d.Range(func(key string, val value.Value) bool {
		if w.opts.IgnorePrivate && strings.HasPrefix(key, value.PrivatePrefix) {
			return true
		}

		if w.opts.IgnoreNone && val.IsNone() {
			return true
		}

		if !first {
			w.buf.WriteByte(',')
		}

		first = false

		w.newlineIndent(depth + 1)

		if err = w.writeJSONString(key); err != nil {
			return false
		}

		w.buf.WriteByte(':')

		if w.opts.Indent > 0 {
			w.buf.WriteByte(' ')
		}

		if err = w.write(val, depth+1); err != nil {
			return false
		}

		return true
	})

	if err != nil {
		return err
	}

	if !first {
		w.newlineIndent(depth)
	}

	w.buf.WriteByte('}')

	return nil
}

func (w *jsonWriter) newlineIndent(depth int) {
	if w.opts.Indent <= 0 {
		return
	}

	w.buf.WriteByte('\n')
	w.buf.WriteString(strings.Repeat(" ", depth*w.opts.Indent))
}
