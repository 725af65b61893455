package runner_test

import (
	"testing"

	"github.com/ChainSafe/lifo/common/lifo"
	"github.com/ChainSafe/lifo/runner"
	"github.com/ChainSafe/lifo/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func push(v string) script.Step {
	return script.Step{Op: script.OpPush, Value: v, HasValue: true}
}

func op(o script.Op) script.Step {
	return script.Step{Op: o}
}

func TestRun(t *testing.T) {
	sc := &script.Script{
		Name: "roundtrip",
		Steps: []script.Step{
			push("1"), push("2"), push("3"),
			op(script.OpRender),
			op(script.OpIterate),
			op(script.OpPeek),
			op(script.OpPop),
			op(script.OpTop),
			op(script.OpSize),
			op(script.OpEmpty),
		},
	}

	report, err := runner.NewRunner().Run(sc)
	require.NoError(t, err)

	results := make([]string, 0, len(report.Steps))
	for _, s := range report.Steps {
		results = append(results, s.Result)
		assert.Equal(t, runner.SeverityOK, s.Severity)
	}
	assert.Equal(t, []string{"", "", "", "3 -> 2 -> 1", "[3, 2, 1]", "3", "3", "2", "2", "false"}, results)
	assert.Equal(t, 3, report.Steps[2].Size)
	assert.Equal(t, 2, report.Steps[6].Size)
	assert.Equal(t, "2 -> 1", report.Final)
	assert.Equal(t, 2, report.Size)
	assert.Equal(t, 0, report.Failed)
	assert.False(t, report.Aborted)
}

func TestRunRecordsEmptyFailures(t *testing.T) {
	sc := &script.Script{
		Name:      "empty",
		Separator: "|",
		Steps: []script.Step{
			op(script.OpPop),
			op(script.OpPeek),
			push("x"),
			op(script.OpPop),
			op(script.OpEmpty),
			op(script.OpRender),
		},
	}

	report, err := runner.NewRunner().Run(sc)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, runner.SeverityError, report.Steps[0].Severity)
	assert.Equal(t, lifo.ErrStackEmpty.Error(), report.Steps[0].Error)
	assert.Equal(t, runner.SeverityError, report.Steps[1].Severity)
	assert.Equal(t, "x", report.Steps[3].Result)
	assert.Equal(t, "true", report.Steps[4].Result)
	assert.Equal(t, "", report.Steps[5].Result)
	assert.Equal(t, "|", report.Separator)
	assert.Equal(t, "", report.Final)
}

func TestRunStrictAborts(t *testing.T) {
	sc := &script.Script{
		Name:   "strict",
		Strict: true,
		Steps:  []script.Step{push("a"), op(script.OpPop), op(script.OpPop), push("b")},
	}

	report, err := runner.NewRunner().Run(sc)
	assert.ErrorIs(t, err, lifo.ErrStackEmpty)
	assert.EqualError(t, err, "step 3 (pop): stack is empty")
	require.NotNil(t, report)
	assert.True(t, report.Aborted)
	assert.Len(t, report.Steps, 3)
	assert.Equal(t, 1, report.Failed)
}

func TestRunInvalidScript(t *testing.T) {
	_, err := runner.NewRunner().Run(&script.Script{})
	assert.ErrorContains(t, err, "invalid script")
}
