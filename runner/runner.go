// Package runner executes scripts against a stack and records the outcome of every step.
package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ChainSafe/lifo/common/lifo"
	"github.com/ChainSafe/lifo/log"
	"github.com/ChainSafe/lifo/script"
)

// Runner represents the interface for the script runner.
type Runner interface {
	// Run executes every step of the script against a fresh stack.
	// In strict mode it stops at the first failed step and returns the
	// partial report together with the error.
	Run(s *script.Script) (*Report, error)
}

// Severity marks whether a step succeeded.
type Severity string

const (
	SeverityOK    Severity = "OK"
	SeverityError Severity = "ERROR"
)

// Step is the outcome of one script step.
type Step struct {
	Index    int      `json:"index"`
	Op       string   `json:"op"`
	Value    string   `json:"value,omitempty"`
	Result   string   `json:"result,omitempty"`
	Size     int      `json:"size"` // Stack size after the step.
	Error    string   `json:"error,omitempty"`
	Severity Severity `json:"severity"`
}

// Report is the outcome of a whole run.
type Report struct {
	Script    string  `json:"script"`
	Separator string  `json:"separator"`
	Steps     []*Step `json:"steps"`
	Final     string  `json:"final"` // Final stack rendered top to bottom.
	Size      int     `json:"size"`
	Failed    int     `json:"failed"`
	Aborted   bool    `json:"aborted,omitempty"`
}

type stackRunner struct{}

// NewRunner creates a runner that operates on a stack of strings.
func NewRunner() Runner {
	return &stackRunner{}
}

func (r *stackRunner) Run(s *script.Script) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	sep := s.Separator
	if sep == "" {
		sep = lifo.DefaultSeparator
	}

	stack := lifo.New[string]()
	report := &Report{Script: s.Name, Separator: sep}

	var runErr error
	for i, st := range s.Steps {
		step := &Step{Index: i + 1, Op: string(st.Op), Value: st.Value}
		result, err := apply(stack, st, sep)
		step.Result = result
		step.Size = stack.Len()
		step.Severity = SeverityOK
		if err != nil {
			step.Error = err.Error()
			step.Severity = SeverityError
			report.Failed++
		}
		report.Steps = append(report.Steps, step)

		log.WithFields(log.Fields{"step": step.Index, "op": step.Op, "size": step.Size}).
			Debug("step executed")

		if err != nil && s.Strict {
			report.Aborted = true
			runErr = fmt.Errorf("step %d (%s): %w", step.Index, step.Op, err)
			break
		}
	}

	report.Final = stack.Join(sep)
	report.Size = stack.Len()
	if report.Failed > 0 {
		log.Warnf("script %q: %d of %d steps failed", s.Name, report.Failed, len(report.Steps))
	}
	return report, runErr
}

func apply(stack *lifo.Stack[string], st script.Step, sep string) (string, error) {
	switch st.Op {
	case script.OpPush:
		stack.Push(st.Value)
		return "", nil
	case script.OpPop:
		return stack.Pop()
	case script.OpPeek:
		return stack.Peek()
	case script.OpTop:
		return stack.Top()
	case script.OpSize:
		return strconv.Itoa(stack.Len()), nil
	case script.OpEmpty:
		return strconv.FormatBool(stack.IsEmpty()), nil
	case script.OpRender:
		return stack.Join(sep), nil
	case script.OpIterate:
		var values []string
		for v := range stack.All() {
			values = append(values, v)
		}
		return "[" + strings.Join(values, ", ") + "]", nil
	}
	return "", errors.New("unknown operation " + string(st.Op))
}
