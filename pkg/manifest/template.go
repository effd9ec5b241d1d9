package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/aymerick/raymond"
	"github.com/ghodss/yaml"
)

type Variables map[string]any

// Render executes a handlebars template over the manifest source.
// Without variables the source is returned untouched.
func Render(data []byte, vars Variables) ([]byte, error) {
	if len(vars) == 0 {
		return data, nil
	}
	template, err := raymond.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse template: %s", err)
	}

	output, err := template.Exec(vars)
	if err != nil {
		return nil, fmt.Errorf("execute template: %s", err)
	}

	return []byte(output), nil
}

func VariablesFromFile(path string) (Variables, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: open file: %s", path, err)
	}

	vars := Variables{}
	err = yaml.Unmarshal(file, &vars)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}

	return vars, nil
}

func VariablesFromSlice(vars []string) Variables {
	tv := Variables{}
	for _, keyval := range vars {
		tokens := strings.SplitN(keyval, "=", 2)
		switch len(tokens) {
		case 2: // KEY=VAL
			tv[tokens[0]] = tokens[1]
		case 1: // KEY
			tv[tokens[0]] = true
		default:
			continue
		}
	}

	return tv
}

// Merge copies overrides on top of vars and reports each key that was replaced.
func (vars Variables) Merge(overrides Variables, replaced func(key string, oldval, newval any)) {
	for key, val := range overrides {
		if oldval, ok := vars[key]; ok && replaced != nil {
			replaced(key, oldval, val)
		}
		vars[key] = val
	}
}
