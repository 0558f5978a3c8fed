package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/framegen/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// evaluate returns the value of an optional attribute expression. An absent
// attribute evaluates to null.
func evaluate(expr hcl.Expression) (cty.Value, error) {
	if expr == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("%s: value must be known", expr.Range())
	}
	return val, nil
}

// stringList decodes an optional list of strings. present is false when the
// attribute was not set, so an explicit empty list stays distinguishable.
func stringList(expr hcl.Expression) (list []string, present bool, err error) {
	val, err := evaluate(expr)
	if err != nil || val.IsNull() {
		return nil, false, err
	}
	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, true, fmt.Errorf("%s: must be a list of strings: %w", expr.Range(), err)
	}
	list, err = toStrings(converted)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", expr.Range(), err)
	}
	return list, true, nil
}

// nestedStringList decodes a list of string lists. A flat list of strings is
// accepted as a single sublist.
func nestedStringList(expr hcl.Expression) ([][]string, error) {
	val, err := evaluate(expr)
	if err != nil || val.IsNull() {
		return nil, err
	}

	if nested, err := convert.Convert(val, cty.List(cty.List(cty.String))); err == nil {
		out := make([][]string, 0, nested.LengthInt())
		for it := nested.ElementIterator(); it.Next(); {
			_, sub := it.Element()
			list, err := toStrings(sub)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", expr.Range(), err)
			}
			out = append(out, list)
		}
		return out, nil
	}

	flat, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("%s: must be a list of strings or a list of string lists: %w", expr.Range(), err)
	}
	list, err := toStrings(flat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expr.Range(), err)
	}
	return [][]string{list}, nil
}

// environment decodes an optional object of environment variables. Entries
// come out in lexical key order. present is false when the attribute was not
// set.
func environment(expr hcl.Expression) (vars []config.EnvironmentVariable, present bool, err error) {
	val, err := evaluate(expr)
	if err != nil || val.IsNull() {
		return nil, false, err
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, true, fmt.Errorf("%s: must be an object, got %s", expr.Range(), ty.FriendlyName())
	}
	if val.LengthInt() == 0 {
		return []config.EnvironmentVariable{}, true, nil
	}
	converted, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, true, fmt.Errorf("%s: values must be strings: %w", expr.Range(), err)
	}

	vars = make([]config.EnvironmentVariable, 0, converted.LengthInt())
	for it := converted.ElementIterator(); it.Next(); {
		k, v := it.Element()
		if v.IsNull() {
			return nil, true, fmt.Errorf("%s: variable %q is null", expr.Range(), k.AsString())
		}
		vars = append(vars, config.EnvironmentVariable{Key: k.AsString(), Value: v.AsString()})
	}
	return vars, true, nil
}

func toStrings(list cty.Value) ([]string, error) {
	out := make([]string, 0, list.LengthInt())
	for it := list.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.IsNull() {
			return nil, fmt.Errorf("list must not contain null")
		}
		out = append(out, v.AsString())
	}
	return out, nil
}
