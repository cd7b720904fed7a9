package codec

import "fmt"

// Mapping-form structural edits. Hosts that move trees across a process
// boundary sometimes patch them without ever decoding back to typed nodes;
// these edits cover that path. Each one deep-copies its input, then performs
// a full pre-order walk that recurses into every map- and list-valued field
// regardless of whether the current node matched, so edits apply at every
// depth and compose in any order.

// RenameFunction renames a function definition along with every call to it
// and every bare reference.
func RenameFunction(m Mapping, oldName, newName string) Mapping {
	out := deepCopy(m).(Mapping)
	walkMappings(out, func(n Mapping) {
		switch n[KeyNodeType] {
		case "FunctionDef":
			if n["name"] == oldName {
				n["name"] = newName
			}
		case "Call":
			if fn, ok := n["func"].(Mapping); ok {
				if fn[KeyNodeType] == "Name" && fn["id"] == oldName {
					fn["id"] = newName
				}
			}
		case "Name":
			if n["id"] == oldName {
				n["id"] = newName
			}
		}
	})
	return out
}

// InjectLogging prepends a print statement to the body of every function
// definition, naming the function.
func InjectLogging(m Mapping, message string) Mapping {
	out := deepCopy(m).(Mapping)
	walkMappings(out, func(n Mapping) {
		if n[KeyNodeType] != "FunctionDef" {
			return
		}
		name, _ := n["name"].(string)
		stmt := logStatement(fmt.Sprintf("%s: %s", message, name))
		if body, ok := n["body"].([]any); ok {
			n["body"] = append([]any{stmt}, body...)
		}
	})
	return out
}

// ReplaceConstant replaces every constant equal to oldValue with newValue.
func ReplaceConstant(m Mapping, oldValue, newValue any) Mapping {
	out := deepCopy(m).(Mapping)
	walkMappings(out, func(n Mapping) {
		if n[KeyNodeType] == "Constant" && n["value"] == oldValue {
			n["value"] = newValue
		}
	})
	return out
}

// RemoveStatements deletes every statement of the given node type from all
// statement-sequence fields, at every nesting depth.
func RemoveStatements(m Mapping, nodeType string) Mapping {
	out := deepCopy(m).(Mapping)
	walkMappings(out, func(n Mapping) {
		for _, key := range []string{"body", "orelse", "finalbody"} {
			seq, ok := n[key].([]any)
			if !ok {
				continue
			}
			kept := make([]any, 0, len(seq))
			for _, item := range seq {
				if im, ok := item.(Mapping); ok && im[KeyNodeType] == nodeType {
					continue
				}
				kept = append(kept, item)
			}
			n[key] = kept
		}
	})
	return out
}

// walkMappings calls visit on every mapping in the structure, pre-order,
// recursing into every map- and list-valued entry.
func walkMappings(v any, visit func(Mapping)) {
	switch x := v.(type) {
	case Mapping:
		visit(x)
		for _, val := range x {
			walkMappings(val, visit)
		}
	case []any:
		for _, item := range x {
			walkMappings(item, visit)
		}
	}
}

func deepCopy(v any) any {
	switch x := v.(type) {
	case Mapping:
		out := make(Mapping, len(x))
		for k, val := range x {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}

func logStatement(message string) Mapping {
	return Mapping{
		KeyNodeType: "Expr",
		"value": Mapping{
			KeyNodeType: "Call",
			"func":      Mapping{KeyNodeType: "Name", "id": "print", "ctx": "Load"},
			"args":      []any{Mapping{KeyNodeType: "Constant", "value": message}},
			"keywords":  []any{},
		},
	}
}

// EditParam describes one parameter of an edit.
type EditParam struct {
	Name        string
	Type        string
	Description string
}

// EditInfo describes one available mapping-form edit.
type EditInfo struct {
	Name        string
	Description string
	Params      []EditParam
}

// AvailableEdits lists the mapping-form edits for host discovery.
func AvailableEdits() []EditInfo {
	return []EditInfo{
		{
			Name:        "rename-function",
			Description: "Rename a function definition and all its call sites",
			Params: []EditParam{
				{Name: "old", Type: "string", Description: "current function name"},
				{Name: "new", Type: "string", Description: "new function name"},
			},
		},
		{
			Name:        "inject-logging",
			Description: "Prepend a print statement to every function body",
			Params: []EditParam{
				{Name: "message", Type: "string", Description: "log message prefix"},
			},
		},
		{
			Name:        "replace-constant",
			Description: "Replace every matching constant value",
			Params: []EditParam{
				{Name: "old", Type: "scalar", Description: "value to replace"},
				{Name: "new", Type: "scalar", Description: "replacement value"},
			},
		},
		{
			Name:        "remove-statements",
			Description: "Delete every statement of a given node type",
			Params: []EditParam{
				{Name: "type", Type: "string", Description: "node type to delete (e.g. Pass)"},
			},
		},
	}
}
