package api

import "go.confplan.dev/vplan/value"

// arg returns the positional argument at index i from a
// [value.Value] list, or false if args isn't a list or i is out of range.
func arg(args value.Value, i int) (value.Value, bool) {
	if !args.IsList() || i >= args.List().Len() {
		return value.Value{}, false
	}

	return args.List().Index(i), true
}

func kwargBool(kwargs value.Value, key string) (bool, bool) {
	v, ok := kwargs.GetByKey(key)
	if !ok || !v.IsBool() {
		return false, false
	}

	return v.Bool(), true
}

func kwargInt(kwargs value.Value, key string) (int, bool) {
	v, ok := kwargs.GetByKey(key)
	if !ok || !v.IsInt() {
		return 0, false
	}

	return int(v.Int()), true
}
