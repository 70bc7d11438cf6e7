package value

// Equal reports whether v and other are structurally equal: same case, same
// scalar payload, same list elements in order, same dict keys in order with
// equal values, same schema name/package/config.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindUndefined, KindNone, KindFunc:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindStr:
		return v.s == other.s
	case KindUnit:
		return v.unit == other.unit
	case KindList:
		return listsEqual(v.list, other.list)
	case KindDict:
		return dictsEqual(v.dict, other.dict)
	case KindSchema:
		return v.schema.Name == other.schema.Name &&
			v.schema.PackagePath == other.schema.PackagePath &&
			dictsEqual(v.schema.Config, other.schema.Config)
	}

	return false
}

func listsEqual(a, b *List) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i, av := range a.Items() {
		if !av.Equal(b.Index(i)) {
			return false
		}
	}

	return true
}

func dictsEqual(a, b *Dict) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i, k := range a.Keys() {
		if b.Keys()[i] != k {
			return false
		}

		av, _ := a.Get(k)

		bv, ok := b.Get(k)
		if !ok || !av.Equal(bv) {
			return false
		}
	}

	return true
}
