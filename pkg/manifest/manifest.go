package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	yamlv2 "gopkg.in/yaml.v2"
)

var (
	ErrEmpty         = errors.New("manifest is empty")
	ErrMultiDocument = errors.New("manifest contains more than one YAML document")
	ErrNotMapping    = errors.New("manifest is not a mapping")
	ErrPathNotFound  = errors.New("path not found in manifest")
)

// ParseError is returned when a manifest document cannot be understood.
type ParseError struct {
	Err error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse manifest: %s", err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Manifest is a deployment manifest held in memory as generic data.
// Mappings are map[string]any and sequences []any. Scalars keep the types the YAML decoder
// gives them, so integers stay int (uint64 beyond int64) and are written back unchanged.
type Manifest map[string]any

// Parse reads a single YAML document into a Manifest.
func Parse(data []byte) (Manifest, error) {
	var content any

	decoder := yamlv2.NewDecoder(bytes.NewReader(data))
	err := decoder.Decode(&content)
	if err == io.EOF {
		return nil, &ParseError{Err: ErrEmpty}
	} else if err != nil {
		return nil, &ParseError{Err: err}
	}

	var extra any
	err = decoder.Decode(&extra)
	if err == nil {
		return nil, &ParseError{Err: ErrMultiDocument}
	} else if err != io.EOF {
		return nil, &ParseError{Err: err}
	}

	if content == nil {
		return nil, &ParseError{Err: ErrEmpty}
	}

	normalized, err := normalize(content)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	m, ok := normalized.(map[string]any)
	if !ok {
		return nil, &ParseError{Err: ErrNotMapping}
	}

	return m, nil
}

// Marshal renders the manifest as YAML.
func (m Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(map[string]any(m))
}

// Name returns the top-level deployment name, if any.
func (m Manifest) Name() string {
	name, _ := m["name"].(string)
	return name
}

// Get looks up a dotted path such as "instance_groups.0.jobs.1.properties".
// Numeric segments index into sequences.
func (m Manifest) Get(path string) (any, error) {
	var node any = map[string]any(m)
	for _, segment := range splitPath(path) {
		child, err := descend(node, segment)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		node = child
	}
	return node, nil
}

// Set assigns value at a dotted path. Missing mapping keys are created;
// sequence indices must already exist.
func (m Manifest) Set(path string, value any) error {
	segments := splitPath(path)
	if len(segments) == 0 {
		return fmt.Errorf("empty path: %w", ErrPathNotFound)
	}

	var node any = map[string]any(m)
	for i, segment := range segments[:len(segments)-1] {
		child, err := descend(node, segment)
		if errors.Is(err, ErrPathNotFound) {
			if parent, ok := node.(map[string]any); ok {
				child = make(map[string]any)
				parent[segment] = child
				err = nil
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", strings.Join(segments[:i+1], "."), err)
		}
		node = child
	}

	last := segments[len(segments)-1]
	switch typed := node.(type) {
	case map[string]any:
		typed[last] = value
	case []any:
		index, err := sequenceIndex(typed, last)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		typed[index] = value
	default:
		return fmt.Errorf("%s: cannot set a key on %T: %w", path, node, ErrPathNotFound)
	}
	return nil
}

// ParseValue interprets a YAML scalar or flow document the way it would be read from a manifest.
func ParseValue(raw string) (any, error) {
	var value any
	err := yamlv2.Unmarshal([]byte(raw), &value)
	if err != nil {
		return nil, err
	}
	return normalize(value)
}

// normalize converts the map[interface{}]interface{} mappings produced by yaml.v2
// into map[string]any, recursively.
func normalize(node any) (any, error) {
	switch typed := node.(type) {
	case map[interface{}]interface{}:
		converted := make(map[string]any, len(typed))
		for key, value := range typed {
			child, err := normalize(value)
			if err != nil {
				return nil, err
			}
			switch key.(type) {
			case string, int, int64, uint64, float64, bool:
				converted[fmt.Sprint(key)] = child
			default:
				return nil, fmt.Errorf("unsupported mapping key %v of type %T", key, key)
			}
		}
		return converted, nil
	case []interface{}:
		converted := make([]any, len(typed))
		for i, value := range typed {
			child, err := normalize(value)
			if err != nil {
				return nil, err
			}
			converted[i] = child
		}
		return converted, nil
	default:
		return node, nil
	}
}

func splitPath(path string) []string {
	if len(path) == 0 {
		return nil
	}
	return strings.Split(path, ".")
}

func descend(node any, segment string) (any, error) {
	switch typed := node.(type) {
	case map[string]any:
		child, ok := typed[segment]
		if !ok {
			return nil, fmt.Errorf("key %q: %w", segment, ErrPathNotFound)
		}
		return child, nil
	case []any:
		index, err := sequenceIndex(typed, segment)
		if err != nil {
			return nil, err
		}
		return typed[index], nil
	default:
		return nil, fmt.Errorf("cannot descend into %T with %q: %w", node, segment, ErrPathNotFound)
	}
}

func sequenceIndex(seq []any, segment string) (int, error) {
	index, err := strconv.Atoi(segment)
	if err != nil || index < 0 || index >= len(seq) {
		return 0, fmt.Errorf("index %q out of range [0,%d): %w", segment, len(seq), ErrPathNotFound)
	}
	return index, nil
}
