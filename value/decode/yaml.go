package decode

import (
	"errors"
	"fmt"

	goyamlast "github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"go.confplan.dev/vplan/value"
)

// Sentinel errors returned by this package.
var (
	ErrInvalidYAML = errors.New("invalid yaml")
	ErrInvalidJSON = errors.New("invalid json")
)

// YAML decodes the first document of a YAML byte stream into a
// [value.Value]. An empty or blank document decodes to [value.Undefined].
func YAML(input []byte) (value.Value, error) {
	file, err := parser.ParseBytes(input, 0)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return value.Undefined(), nil
	}

	anchors := buildAnchorMap(file.Docs[0].Body)

	return decodeNode(file.Docs[0].Body, anchors)
}

// YAMLAll decodes every document in a YAML byte stream, in order.
func YAMLAll(input []byte) ([]value.Value, error) {
	file, err := parser.ParseBytes(input, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	docs := make([]value.Value, 0, len(file.Docs))

	for _, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}

		anchors := buildAnchorMap(doc.Body)

		v, err := decodeNode(doc.Body, anchors)
		if err != nil {
			return nil, err
		}

		docs = append(docs, v)
	}

	return docs, nil
}

func buildAnchorMap(node goyamlast.Node) map[string]goyamlast.Node {
	anchors := make(map[string]goyamlast.Node)
	goyamlast.Walk(&anchorVisitor{anchors: anchors}, node)

	return anchors
}

type anchorVisitor struct {
	anchors map[string]goyamlast.Node
}

func (v *anchorVisitor) Visit(node goyamlast.Node) goyamlast.Visitor {
	if anchor, ok := node.(*goyamlast.AnchorNode); ok {
		v.anchors[anchor.Name.String()] = anchor.Value
	}

	return v
}

func resolveAliases(node goyamlast.Node, anchors map[string]goyamlast.Node) goyamlast.Node {
	if node == nil {
		return nil
	}

	alias, ok := node.(*goyamlast.AliasNode)
	if !ok {
		return node
	}

	if resolved, found := anchors[alias.Value.String()]; found {
		return resolved
	}

	return nil
}

func unwrapNode(node goyamlast.Node) goyamlast.Node {
	for {
		switch n := node.(type) {
		case *goyamlast.TagNode:
			node = n.Value
		case *goyamlast.AnchorNode:
			node = n.Value
		default:
			return node
		}
	}
}

func decodeNode(node goyamlast.Node, anchors map[string]goyamlast.Node) (value.Value, error) {
	node = resolveAliases(node, anchors)
	node = unwrapNode(node)

	if node == nil {
		return value.None(), nil
	}

	switch n := node.(type) {
	case *goyamlast.NullNode:
		return value.None(), nil
	case *goyamlast.BoolNode:
		return value.Bool(n.Value), nil
	case *goyamlast.IntegerNode:
		return decodeInteger(n)
	case *goyamlast.FloatNode:
		return value.Float(n.Value), nil
	case *goyamlast.InfinityNode:
		return value.Float(n.Value), nil
	case *goyamlast.NanNode:
		return value.Float(0), nil
	case *goyamlast.StringNode:
		return value.Str(n.Value), nil
	case *goyamlast.LiteralNode:
		return value.Str(n.String()), nil
	case *goyamlast.MappingNode:
		return decodeMapping(n.Values, anchors)
	case *goyamlast.MappingValueNode:
		return decodeMapping([]*goyamlast.MappingValueNode{n}, anchors)
	case *goyamlast.SequenceNode:
		return decodeSequence(n, anchors)
	default:
		return value.Str(node.String()), nil
	}
}

func decodeInteger(n *goyamlast.IntegerNode) (value.Value, error) {
	switch v := n.Value.(type) {
	case int64:
		return value.Int(v), nil
	case uint64:
		return value.Int(int64(v)), nil
	case int:
		return value.Int(int64(v)), nil
	default:
		return value.Str(n.String()), nil
	}
}

func decodeMapping(values []*goyamlast.MappingValueNode, anchors map[string]goyamlast.Node) (value.Value, error) {
	d := &value.Dict{}

	for _, mvn := range values {
		if _, ok := mvn.Key.(*goyamlast.MergeKeyNode); ok {
			if err := applyMergeKey(d, mvn, anchors); err != nil {
				return value.Value{}, err
			}

			continue
		}

		key := mvn.Key.String()

		v, err := decodeNode(mvn.Value, anchors)
		if err != nil {
			return value.Value{}, err
		}

		d.Upsert(key, v)
	}

	return value.NewDict(d), nil
}

// applyMergeKey implements YAML's "<<" merge key: properties from the
// referenced mapping (or sequence of mappings) are copied in wherever the
// current dict does not already define them.
func applyMergeKey(d *value.Dict, mvn *goyamlast.MappingValueNode, anchors map[string]goyamlast.Node) error {
	mergeValue := resolveAliases(mvn.Value, anchors)
	mergeValue = unwrapNode(mergeValue)

	switch mv := mergeValue.(type) {
	case *goyamlast.MappingNode:
		return mergeMappingInto(d, mv.Values, anchors)
	case *goyamlast.SequenceNode:
		for _, item := range mv.Values {
			resolved := unwrapNode(resolveAliases(item, anchors))

			mn, ok := resolved.(*goyamlast.MappingNode)
			if !ok {
				continue
			}

			if err := mergeMappingInto(d, mn.Values, anchors); err != nil {
				return err
			}
		}
	}

	return nil
}

func mergeMappingInto(d *value.Dict, values []*goyamlast.MappingValueNode, anchors map[string]goyamlast.Node) error {
	for _, mvn := range values {
		key := mvn.Key.String()
		if d.Has(key) {
			continue
		}

		v, err := decodeNode(mvn.Value, anchors)
		if err != nil {
			return err
		}

		d.Upsert(key, v)
	}

	return nil
}

func decodeSequence(seq *goyamlast.SequenceNode, anchors map[string]goyamlast.Node) (value.Value, error) {
	l := &value.List{}

	for _, item := range seq.Values {
		v, err := decodeNode(item, anchors)
		if err != nil {
			return value.Value{}, err
		}

		l.Append(v)
	}

	return value.NewList(l), nil
}
