package symcalc

import (
	"encoding/json"
	"fmt"
)

// ToJSON encodes the expression as nested {"type": ...} objects:
// num, sym, add, mul, pow, call, diff, int.
func (a *Arena) ToJSON(h Handle) (string, error) {
	m, err := a.exprMap(h)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (a *Arena) exprMap(h Handle) (map[string]interface{}, error) {
	n, err := a.At(h)
	if err != nil {
		return nil, err
	}
	switch n.Kind {
	case KindNumber:
		return map[string]interface{}{"type": "num", "value": n.Value.String()}, nil
	case KindSymbol:
		return map[string]interface{}{"type": "sym", "name": n.Name}, nil
	case KindAdd, KindMul, KindPow:
		t := map[Kind]string{KindAdd: "add", KindMul: "mul", KindPow: "pow"}[n.Kind]
		left, right := n.Left, n.Right
		lm, err := a.exprMap(left)
		if err != nil {
			return nil, err
		}
		rm, err := a.exprMap(right)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"type": t, "left": lm, "right": rm}, nil
	case KindCall:
		am, err := a.exprMap(n.Left)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"type": "call", "fn": n.Fn.String(), "arg": am}, nil
	case KindDerivative, KindIntegral:
		t := "diff"
		if n.Kind == KindIntegral {
			t = "int"
		}
		im, err := a.exprMap(n.Left)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"type": t, "var": n.Name, "inner": im}, nil
	}
	return nil, ErrInvalidIndex
}

// FromJSON decodes a ToJSON-shaped document into raw (unsimplified) nodes.
func (a *Arena) FromJSON(data []byte) (Handle, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return InvalidHandle, err
	}
	return a.FromMap(m)
}

// FromMap builds an expression from a JSON-shaped map, as produced by
// encoding/json or any codec that decodes into map[string]interface{}.
func (a *Arena) FromMap(m map[string]interface{}) (Handle, error) {
	t, ok := m["type"].(string)
	if !ok {
		return InvalidHandle, fmt.Errorf("symcalc: expression map missing \"type\"")
	}
	switch t {
	case "num":
		v, ok := m["value"].(string)
		if !ok {
			return InvalidHandle, fmt.Errorf("symcalc: num needs a string \"value\"")
		}
		return a.Number(v)
	case "sym":
		name, ok := m["name"].(string)
		if !ok || name == "" {
			return InvalidHandle, fmt.Errorf("symcalc: sym needs a non-empty \"name\"")
		}
		return a.Symbol(name)
	case "add", "mul", "pow":
		l, err := a.fromChild(m, "left")
		if err != nil {
			return InvalidHandle, err
		}
		r, err := a.fromChild(m, "right")
		if err != nil {
			return InvalidHandle, err
		}
		switch t {
		case "add":
			return a.Add(l, r)
		case "mul":
			return a.Mul(l, r)
		default:
			return a.Pow(l, r)
		}
	case "call":
		name, ok := m["fn"].(string)
		if !ok {
			return InvalidHandle, fmt.Errorf("symcalc: call needs a string \"fn\"")
		}
		fn, ok := parseFuncKind(name)
		if !ok {
			return InvalidHandle, fmt.Errorf("symcalc: unknown function %q", name)
		}
		arg, err := a.fromChild(m, "arg")
		if err != nil {
			return InvalidHandle, err
		}
		return a.Call(fn, arg)
	case "diff", "int":
		variable, ok := m["var"].(string)
		if !ok || variable == "" {
			return InvalidHandle, fmt.Errorf("symcalc: %s needs a non-empty \"var\"", t)
		}
		inner, err := a.fromChild(m, "inner")
		if err != nil {
			return InvalidHandle, err
		}
		if t == "diff" {
			return a.Diff(inner, variable)
		}
		return a.Integral(inner, variable)
	}
	return InvalidHandle, fmt.Errorf("symcalc: unknown expression type %q", t)
}

func (a *Arena) fromChild(m map[string]interface{}, key string) (Handle, error) {
	child, ok := m[key].(map[string]interface{})
	if !ok {
		return InvalidHandle, fmt.Errorf("symcalc: %q must be an expression object", key)
	}
	return a.FromMap(child)
}
