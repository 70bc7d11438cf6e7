package api

import (
	"fmt"
	"os"

	"go.confplan.dev/vplan/emit"
	"go.confplan.dev/vplan/value"
	"go.confplan.dev/vplan/value/decode"
)

// jsonEncodeOptionsFromKwargs reads the sort_keys, indent, ignore_private,
// and ignore_none keyword arguments recognized by the JSON encode path.
// Unknown keywords are ignored.
func jsonEncodeOptionsFromKwargs(kwargs value.Value) emit.JSONOptions {
	var opts emit.JSONOptions

	if v, ok := kwargBool(kwargs, "sort_keys"); ok {
		opts.SortKeys = v
	}

	if v, ok := kwargInt(kwargs, "indent"); ok {
		opts.Indent = v
	}

	if v, ok := kwargBool(kwargs, "ignore_private"); ok {
		opts.IgnorePrivate = v
	}

	if v, ok := kwargBool(kwargs, "ignore_none"); ok {
		opts.IgnoreNone = v
	}

	return opts
}

func missingArgError(name string, argNames ...string) error {
	if len(argNames) == 1 {
		return fmt.Errorf("%s() missing 1 required positional argument: '%s'", name, argNames[0])
	}

	quoted := make([]string, len(argNames))
	for i, n := range argNames {
		quoted[i] = "'" + n + "'"
	}

	joined := quoted[0]
	for _, q := range quoted[1:] {
		joined += " and " + q
	}

	return fmt.Errorf("%s() missing %d required positional arguments: %s", name, len(argNames), joined)
}

// JSONEncode implements the json_encode foreign entry point: it encodes
// args[0] as JSON under the options named in kwargs and returns a handle to
// the resulting string value.
func JSONEncode(reg *Registry, args, kwargs value.Value) (Handle, error) {
	data, ok := arg(args, 0)
	if !ok {
		return 0, missingArgError("encode", "value")
	}

	text, err := emit.EncodeJSON(data, jsonEncodeOptionsFromKwargs(kwargs))
	if err != nil {
		return 0, err
	}

	return reg.Alloc(value.Str(text)), nil
}

// JSONDecode implements the json_decode foreign entry point: it parses
// args[0] (a JSON string value) and returns a handle to the decoded value.
// Decode failures surface the underlying decoder message unchanged.
func JSONDecode(reg *Registry, args value.Value) (Handle, error) {
	data, ok := arg(args, 0)
	if !ok {
		return 0, missingArgError("decode", "value")
	}

	v, err := decode.JSON([]byte(data.Str()))
	if err != nil {
		return 0, err
	}

	return reg.Alloc(v), nil
}

// JSONValidate implements the json_validate foreign entry point: it
// reports whether args[0] parses as JSON.
func JSONValidate(args value.Value) (bool, error) {
	data, ok := arg(args, 0)
	if !ok {
		return false, missingArgError("validate", "value")
	}

	_, err := decode.JSON([]byte(data.Str()))

	return err == nil, nil
}

// JSONDumpToFile implements the json_dump_to_file foreign entry point.
//
// The original bridge reads filename from the same positional slot as
// data (slot 0) and always panics; here data is read from slot 0 and
// filename from slot 1, and success is reported when the write succeeds.
func JSONDumpToFile(args, kwargs value.Value) error {
	data, ok := arg(args, 0)
	if !ok {
		return missingArgError("dump_to_file", "data", "filename")
	}

	filename, ok := arg(args, 1)
	if !ok {
		return missingArgError("dump_to_file", "data", "filename")
	}

	text, err := emit.EncodeJSON(data, jsonEncodeOptionsFromKwargs(kwargs))
	if err != nil {
		return err
	}

	return os.WriteFile(filename.Str(), []byte(text), 0o644)
}
