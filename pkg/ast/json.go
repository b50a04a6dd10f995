package ast

import (
	"encoding/json"
	"fmt"
)

// MarshalTerm encodes t as a JSON object tree keyed on "type".
func MarshalTerm(t Term) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("ast: cannot marshal nil term")
	}
	return json.Marshal(t)
}

// MarshalTermIndent is MarshalTerm with indentation.
func MarshalTermIndent(t Term) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("ast: cannot marshal nil term")
	}
	return json.MarshalIndent(t, "", "  ")
}

// UnmarshalTerm decodes a JSON term produced by MarshalTerm or by an external
// translator using the same shape.
func UnmarshalTerm(data []byte) (Term, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ast: decode json: %w", err)
	}
	return decodeTerm(raw)
}

func decodeTerm(node map[string]any) (Term, error) {
	if node == nil {
		return nil, fmt.Errorf("ast: missing term")
	}
	typ, _ := node["type"].(string)
	switch TermType(typ) {
	case TermNum:
		val, ok := node["value"].(float64)
		if !ok {
			return nil, fmt.Errorf("ast: Num requires numeric value")
		}
		return NewNum(val), nil
	case TermVar:
		name, err := decodeName(node, "name", TermVar)
		if err != nil {
			return nil, err
		}
		return NewVar(name), nil
	case TermNil:
		return NewNil(), nil
	case TermLam:
		param, err := decodeName(node, "param", TermLam)
		if err != nil {
			return nil, err
		}
		body, err := decodeChild(node, "body", TermLam)
		if err != nil {
			return nil, err
		}
		return NewLam(param, body), nil
	case TermApp:
		fn, arg, err := decodePair(node, "fn", "arg", TermApp)
		if err != nil {
			return nil, err
		}
		return NewApp(fn, arg), nil
	case TermBinOp:
		opStr, _ := node["op"].(string)
		op := Operator(opStr)
		if !op.Valid() {
			return nil, fmt.Errorf("ast: BinOp has unknown operator %q", opStr)
		}
		left, right, err := decodePair(node, "left", "right", TermBinOp)
		if err != nil {
			return nil, err
		}
		return NewBinOp(op, left, right), nil
	case TermNeg:
		operand, err := decodeChild(node, "operand", TermNeg)
		if err != nil {
			return nil, err
		}
		return NewNeg(operand), nil
	case TermLet, TermLetRec:
		kind := TermType(typ)
		name, err := decodeName(node, "name", kind)
		if err != nil {
			return nil, err
		}
		value, body, err := decodePair(node, "value", "body", kind)
		if err != nil {
			return nil, err
		}
		if kind == TermLet {
			return NewLet(name, value, body), nil
		}
		return NewLetRec(name, value, body), nil
	case TermFix:
		operand, err := decodeChild(node, "operand", TermFix)
		if err != nil {
			return nil, err
		}
		return NewFix(operand), nil
	case TermIf:
		cond, err := decodeChild(node, "cond", TermIf)
		if err != nil {
			return nil, err
		}
		then, els, err := decodePair(node, "then", "else", TermIf)
		if err != nil {
			return nil, err
		}
		return NewIf(cond, then, els), nil
	case TermSeq:
		first, second, err := decodePair(node, "first", "second", TermSeq)
		if err != nil {
			return nil, err
		}
		return NewSeq(first, second), nil
	case TermCons:
		head, tail, err := decodePair(node, "head", "tail", TermCons)
		if err != nil {
			return nil, err
		}
		return NewCons(head, tail), nil
	case TermHd:
		list, err := decodeChild(node, "list", TermHd)
		if err != nil {
			return nil, err
		}
		return NewHd(list), nil
	case TermTl:
		list, err := decodeChild(node, "list", TermTl)
		if err != nil {
			return nil, err
		}
		return NewTl(list), nil
	default:
		return nil, fmt.Errorf("ast: unsupported term type %q", typ)
	}
}

func decodeName(node map[string]any, key string, kind TermType) (string, error) {
	name, _ := node[key].(string)
	if name == "" {
		return "", fmt.Errorf("ast: %s missing %s", kind, key)
	}
	if !ValidName(name) {
		return "", fmt.Errorf("ast: %s.%s: invalid identifier %q", kind, key, name)
	}
	return name, nil
}

func decodeChild(node map[string]any, key string, kind TermType) (Term, error) {
	raw, ok := node[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("ast: %s missing %s", kind, key)
	}
	child, err := decodeTerm(raw)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", kind, key, err)
	}
	return child, nil
}

func decodePair(node map[string]any, first, second string, kind TermType) (Term, Term, error) {
	a, err := decodeChild(node, first, kind)
	if err != nil {
		return nil, nil, err
	}
	b, err := decodeChild(node, second, kind)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
