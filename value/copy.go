package value

// DeepCopy returns a value structurally equal to v that shares no mutable
// substructure with it. The planner's outputs must survive v being
// dropped; callers that hand a Value to another owner should DeepCopy it
// first unless the producer already guarantees a fresh tree.
func (v Value) DeepCopy() Value {
	switch v.kind {
	case KindList:
		out := &List{items: make([]Value, 0, v.list.Len())}
		for _, item := range v.list.Items() {
			out.Append(item.DeepCopy())
		}

		return NewList(out)
	case KindDict:
		return NewDict(v.dict.deepCopy())
	case KindSchema:
		s := &Schema{
			Name:        v.schema.Name,
			PackagePath: v.schema.PackagePath,
			Config:      v.schema.Config.deepCopy(),
			ConfigMeta:  v.schema.ConfigMeta.deepCopy(),
			Shape:       v.schema.Shape,
		}

		return NewSchema(s)
	default:
		return v
	}
}

func (d *Dict) deepCopy() *Dict {
	if d == nil {
		return nil
	}

	out := &Dict{keys: make([]string, len(d.keys))}
	copy(out.keys, d.keys)

	out.values = make(map[string]Value, len(d.values))
	for k, v := range d.values {
		out.values[k] = v.DeepCopy()
	}

	if d.ops != nil {
		out.ops = make(map[string]MergeOp, len(d.ops))
		for k, op := range d.ops {
			out.ops[k] = op
		}
	}

	return out
}
