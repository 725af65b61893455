// Package script loads the operation scripts executed by the runner.
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Op names a stack operation.
type Op string

const (
	OpPush    Op = "push"
	OpPop     Op = "pop"
	OpPeek    Op = "peek"
	OpTop     Op = "top"
	OpSize    Op = "size"
	OpEmpty   Op = "empty"
	OpRender  Op = "render"
	OpIterate Op = "iterate"
)

// Ops lists every supported operation.
var Ops = []Op{OpPush, OpPop, OpPeek, OpTop, OpSize, OpEmpty, OpRender, OpIterate}

var errEmptySteps = errors.New("script has no steps")

// Script is a named list of steps run against a fresh stack.
type Script struct {
	Name      string `json:"name" yaml:"name"`
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`
	Strict    bool   `json:"strict,omitempty" yaml:"strict,omitempty"`
	Steps     []Step `json:"steps" yaml:"steps"`
}

// Step is a single operation. It is written either as a bare op name
// ("pop") or as a one-entry map ({push: "1"}).
type Step struct {
	Op       Op
	Value    string
	HasValue bool
}

func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Op = Op(node.Value)
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: step must have exactly one operation", node.Line)
		}
		key, val := node.Content[0], node.Content[1]
		if val.Kind != yaml.ScalarNode || val.Tag == "!!null" {
			return fmt.Errorf("line %d: value of %q must be a scalar", val.Line, key.Value)
		}
		s.Op = Op(key.Value)
		s.Value = val.Value
		s.HasValue = true
		return nil
	}
	return fmt.Errorf("line %d: unsupported step", node.Line)
}

func (s *Step) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Op = Op(name)
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("unsupported step %s", data)
	}
	if len(m) != 1 {
		return errors.New("step must have exactly one operation")
	}
	for k, raw := range m {
		s.Op = Op(k)
		var v interface{}
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		switch v.(type) {
		case map[string]interface{}, []interface{}, nil:
			return fmt.Errorf("value of %q must be a scalar", k)
		case string:
			s.Value = v.(string)
		default:
			s.Value = strings.TrimSpace(string(raw))
		}
		s.HasValue = true
	}
	return nil
}

func (s Step) MarshalJSON() ([]byte, error) {
	if !s.HasValue {
		return json.Marshal(s.Op)
	}
	return json.Marshal(map[Op]string{s.Op: s.Value})
}

// Validate checks every step and reports the first problem with its 1-based index.
func (sc *Script) Validate() error {
	if len(sc.Steps) == 0 {
		return errEmptySteps
	}
	for i, step := range sc.Steps {
		if !lo.Contains(Ops, step.Op) {
			return fmt.Errorf("step %d: unknown operation %q", i+1, step.Op)
		}
		if step.Op == OpPush && !step.HasValue {
			return fmt.Errorf("step %d: push requires a value", i+1)
		}
		if step.Op != OpPush && step.HasValue {
			return fmt.Errorf("step %d: %s does not take a value", i+1, step.Op)
		}
	}
	return nil
}

// Parse decodes a script in the given format ("yaml" or "json") and validates it.
func Parse(data []byte, format string) (*Script, error) {
	var sc Script
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse script: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse script: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported script format: %s", format)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &sc, nil
}

// LoadScript loads a script file, choosing the decoder from its extension.
func LoadScript(filename string) (*Script, error) {
	var format string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".json":
		format = "json"
	default:
		return nil, fmt.Errorf("unsupported script extension: %q", filepath.Ext(filename))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	sc, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return sc, nil
}
