// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/redundantdelegate/internal/cli"
	"fillmore-labs.com/redundantdelegate/internal/output"
)

const source = `class Button
{
    System.EventHandler click;

    void OnClick(object sender, System.EventArgs e) { }

    void Init()
    {
        click += new System.EventHandler(OnClick);
    }
}
`

func workspace(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Execute(t.Context(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := workspace(t, map[string]string{"Button.cs": source})

	code, stdout, stderr := execute(t, "check", "--color=off", dir)

	assert.Equal(t, ExitFindings, code)
	assert.Equal(t, filepath.Join(dir, "Button.cs")+":9:9: warning RDC0001: Redundant explicit delegate declaration\n", stdout)
	assert.Contains(t, stderr, "1 diagnostic in 1 file")
}

func TestCheckClean(t *testing.T) {
	t.Parallel()

	dir := workspace(t, map[string]string{"Empty.cs": "class Empty { }\n"})

	code, stdout, _ := execute(t, "check", "-q", dir)

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout)
}

func TestCheckSeverity(t *testing.T) {
	t.Parallel()

	dir := workspace(t, map[string]string{"Button.cs": source})

	code, stdout, _ := execute(t, "check", "--severity=info", "--format=json", dir)
	assert.Equal(t, ExitOK, code)

	var report output.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "info", report.Diagnostics[0].Severity)

	code, _, _ = execute(t, "check", "--severity=none", dir)
	assert.Equal(t, ExitOK, code)
}

func TestCheckConfigFile(t *testing.T) {
	t.Parallel()

	dir := workspace(t, map[string]string{
		"Button.cs": source,
		"rd.yaml":   "severity: error\nformat: table\n",
	})

	code, stdout, _ := execute(t, "check", "--config", filepath.Join(dir, "rd.yaml"), dir)

	assert.Equal(t, ExitFindings, code)
	assert.Contains(t, stdout, "RDC0001")
	assert.Contains(t, stdout, "error")
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	dir := workspace(t, map[string]string{"Button.cs": source})

	tests := []struct {
		name string
		args []string
	}{
		{"Format", []string{"check", "--format=xml", dir}},
		{"Severity", []string{"check", "--severity=loud", dir}},
		{"Color", []string{"check", "--color=sometimes", dir}},
		{"Missing", []string{"check", filepath.Join(dir, "missing")}},
		{"Config", []string{"check", "--config", filepath.Join(dir, "missing.yaml"), dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := execute(t, tt.args...)

			assert.Equal(t, ExitOperational, code)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestConfigCommand(t *testing.T) {
	t.Parallel()

	dir := workspace(t, map[string]string{"rd.yaml": "jobs: 4\n"})

	code, stdout, _ := execute(t, "config", "--config", filepath.Join(dir, "rd.yaml"))

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "jobs: 4")
	assert.Contains(t, stdout, "format: text")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(t, "version")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "redundantdelegate")
}
