package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/asevik/symexpr/pkg/domain"
	"github.com/asevik/symexpr/pkg/parser"
)

// collectBindings assembles the variable map from the optional YAML file
// and the name=value command-line arguments. Command-line bindings
// override file bindings of the same name.
func collectBindings[T any](d domain.Domain[T], file string, args []string) (map[string]T, error) {
	vars := make(map[string]T, len(args))
	if file != "" {
		if err := loadBindingsFile(d, file, vars); err != nil {
			return nil, err
		}
	}
	for _, a := range args {
		name, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("binding %q is not in name=value form", a)
		}
		v, err := bindingValue(d, val)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", a, err)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, fmt.Errorf("binding %q has an empty variable name", a)
		}
		vars[name] = v
	}
	return vars, nil
}

// loadBindingsFile reads a flat YAML mapping of variable name to value
// into vars. Values are handled like command-line binding values, so
// quoted expressions such as "1+2i" work.
func loadBindingsFile[T any](d domain.Domain[T], path string, vars map[string]T) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading bindings file: %w", err)
	}
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing bindings file %s: %w", path, err)
	}
	for name, val := range raw {
		v, err := bindingValue(d, fmt.Sprint(val))
		if err != nil {
			return fmt.Errorf("bindings file %s, variable %q: %w", path, name, err)
		}
		vars[strings.ToLower(name)] = v
	}
	return nil
}

// bindingValue evaluates a binding value as a variable-free expression,
// so "-2", "1+2i" and "2^10" are all accepted.
func bindingValue[T any](d domain.Domain[T], val string) (T, error) {
	var zero T
	e, err := parser.Parse(strings.TrimSpace(val), d)
	if err != nil {
		return zero, err
	}
	if free := e.Variables(); len(free) > 0 {
		return zero, fmt.Errorf("value %q contains free variables (%s)", val, strings.Join(free, ", "))
	}
	return e.Eval(map[string]T{})
}
