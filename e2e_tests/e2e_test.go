//go:build integration

package e2etest

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/lifo/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "testdata"

type testcase struct {
	path      string
	isPassing bool
	failed    int
	final     string
}

func runTest(t *testing.T, format string, cases map[string]testcase) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cmd := exec.Command("../bin/lifo", "run", "-format", format, tc.path)

			var out bytes.Buffer
			var errOut bytes.Buffer
			cmd.Stdout = &out
			cmd.Stderr = &errOut
			err := cmd.Run()
			if tc.isPassing && err != nil {
				t.Fatalf("Failed to run CLI: %v. errorOutput: %s", err, errOut.String())
			}
			if !tc.isPassing {
				assert.Error(t, err, "Expected a non-zero exit")
			}

			report := runner.Report{}
			require.NoError(t, json.Unmarshal(out.Bytes(), &report))
			assert.Equal(t, tc.failed, report.Failed)
			assert.Equal(t, tc.final, report.Final)
		})
	}
}

func TestScripts(t *testing.T) {
	cases := map[string]testcase{
		"roundtrip": {
			path:      filepath.Join(testdataDir, "roundtrip.yaml"),
			isPassing: true,
		},
		"underflow": {
			path:      filepath.Join(testdataDir, "underflow.json"),
			isPassing: true,
			failed:    2,
		},
		"strict": {
			path:   filepath.Join(testdataDir, "strict.yml"),
			failed: 1,
		},
	}
	runTest(t, "json", cases)
}

func TestRender(t *testing.T) {
	out, err := exec.Command("../bin/lifo", "render", "1", "2", "3").Output()
	require.NoError(t, err)
	assert.Equal(t, "3 -> 2 -> 1\n", string(out))
}
