package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Keystone/cmd"
	"Keystone/internal/calc/report"
	"Keystone/internal/config"
	"Keystone/internal/engine"
)

const beamYAML = `structureType: beam
material: concrete
dimensions:
  width: 300
  height: 500
  length: 8
loads:
  deadLoad: 15
  liveLoad: 10
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvLogLevel, config.EnvStandard, config.EnvDeflectionDivisor, config.EnvLimitsFile} {
		t.Setenv(k, "")
	}
	c := cmd.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(new(bytes.Buffer))
	c.SetIn(strings.NewReader(stdin))
	base := []string{"--env-file", filepath.Join(t.TempDir(), ".env"), "--log-level", "error"}
	c.SetArgs(append(args, base...))
	err := c.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "keystone v")
}

func TestKindsCommand(t *testing.T) {
	out, err := run(t, "", "kinds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(engine.Kinds())+1)
	assert.Contains(t, out, "pile-design")
	assert.Contains(t, out, "pile, foundation")
	assert.Contains(t, out, "any")
}

func TestCalcJSON(t *testing.T) {
	path := writeFile(t, "beam.yaml", beamYAML)
	out, err := run(t, "", "calc", "beam-analysis", "-f", path, "--format", "json", "--compliance")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Valid)
	assert.Equal(t, "beam-analysis", r.Kind)
	assert.InDelta(t, 200, r.Results["maxBendingMoment"].Value, 1e-9)
	assert.NotNil(t, r.Compliance)
}

func TestCalcStandardFlag(t *testing.T) {
	path := writeFile(t, "beam.yaml", beamYAML)
	out, err := run(t, "", "calc", "beam-analysis", "-f", path, "--format", "json", "--standard", "UBBL")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 8000.0/360, r.Results["allowableDeflection"].Value, 1e-9)
}

func TestCalcTableFromStdin(t *testing.T) {
	body := `{"dimensions": {"width": 300, "height": 500, "length": 8}, "loads": {"deadLoad": 15, "liveLoad": 10}}`
	out, err := run(t, body, "calc", "beam-analysis", "-f", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "beam-analysis")
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "maxBendingMoment")
	assert.Contains(t, out, "Checks")
	assert.Contains(t, out, "Standards:")
}

func TestCalcInvalidRequest(t *testing.T) {
	path := writeFile(t, "beam.yaml", strings.Replace(beamYAML, "width: 300", "width: 0", 1))
	out, err := run(t, "", "calc", "beam-analysis", "-f", path)
	require.Error(t, err)
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "Errors")
}

func TestCalcErrors(t *testing.T) {
	path := writeFile(t, "beam.yaml", beamYAML)

	_, err := run(t, "", "calc", "truss-analysis", "-f", path)
	assert.ErrorIs(t, err, engine.ErrUnsupportedCalculation)

	_, err = run(t, "", "calc", "beam-analysis", "-f", path, "--format", "xml")
	assert.Error(t, err)

	_, err = run(t, "", "calc", "beam-analysis")
	assert.Error(t, err)

	_, err = run(t, "", "calc", "beam-analysis", "-f", writeFile(t, "bad.yaml", "dimensions: [1"))
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"id", "kind", "width", "height", "length", "deadLoad", "liveLoad"},
		{"B1", "beam-analysis", 300, 500, 8, 15, 10},
		{"B2", "beam-analysis", 0, 500, 8, 15, 10},
		{"L1", "load-combination", "", "", "", 100, 50},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	dir := t.TempDir()
	sheet := filepath.Join(dir, "batch.xlsx")
	require.NoError(t, f.SaveAs(sheet))
	metrics := filepath.Join(dir, "keystone.prom")

	out, err := run(t, "", "batch", "-f", sheet, "--workers", "2", "--metrics-file", metrics, "--format", "json")
	require.NoError(t, err)

	var res struct {
		RunID     string `json:"run_id"`
		Total     int    `json:"total"`
		Succeeded int    `json:"succeeded"`
		Invalid   int    `json:"invalid"`
		Outcomes  []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Invalid)
	require.Len(t, res.Outcomes, 3)
	assert.Equal(t, "L1", res.Outcomes[2].ID)

	body, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(body), "keystone_batch_items_total")

	out, err = run(t, "", "batch", "-f", sheet)
	require.NoError(t, err)
	assert.Contains(t, out, "3 total, 2 ok, 1 invalid, 0 failed")
}
