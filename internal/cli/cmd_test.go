package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/neuroguard/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs the root command with fresh state and returns what it
// wrote to stdout and stderr separately.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	app := NewApp()
	defer app.Close()
	root := NewRootCmd(app)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const badDataset = `name: broken
years: ["2025", "2027"]
milestones:
  - year: "2025"
    phase: Start
  - year: "2031"
    phase: Late
institutions:
  - name: Nowhere
    lat: 100
    lon: 0
`

// --- validate ---

func TestValidateCmd_Default(t *testing.T) {
	out, _, err := executeCmd(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "dataset neuroguard is valid")
}

func TestValidateCmd_ReportsEveryProblem(t *testing.T) {
	path := writeFile(t, "bad.yaml", badDataset)

	out, _, err := executeCmd(t, "validate", "--data", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
	assert.Contains(t, out, "has 2 problem(s)")
	assert.Contains(t, out, `milestones[1].year "2031"`)
	assert.Contains(t, out, "institutions[0].latitude 100")
}

func TestValidateCmd_UnknownField(t *testing.T) {
	path := writeFile(t, "typo.yaml", "name: x\nmilestone: []\n")

	_, _, err := executeCmd(t, "validate", "--data", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "milestone")
}

// --- show / export ---

func TestShowCmd_Default(t *testing.T) {
	out, _, err := executeCmd(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Mars Deployment")
	assert.Contains(t, out, "Google AI")
	assert.Contains(t, out, "-122.0841")
}

func TestExportCmd_YAMLIsLoadable(t *testing.T) {
	out, _, err := executeCmd(t, "export")
	require.NoError(t, err)

	s, err := dataset.ParseYAML([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, dataset.Default(), dataset.Convert(s))
}

func TestExportCmd_JSON(t *testing.T) {
	out, _, err := executeCmd(t, "export", "--format", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"name": "neuroguard"`)
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	_, _, err := executeCmd(t, "export", "-f", "csv")
	assert.ErrorContains(t, err, `unknown format "csv"`)
}

// --- render ---

func TestRenderCmd_Stdout(t *testing.T) {
	out, stderr, err := executeCmd(t, "render")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Equal(t, 2, strings.Count(out, "Plotly.newPlot("))
	assert.NotContains(t, out, "service_use_case")
	assert.Contains(t, stderr, "use_case=build-dashboard")
}

func TestRenderCmd_WriteFailureIsReported(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	_, stderr, err := executeCmd(t, "render", "--out", "/dev/full")
	require.Error(t, err)
	assert.NotContains(t, stderr, "Wrote")
}

func TestRenderCmd_MissingOutputDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dashboard.html")

	_, stderr, err := executeCmd(t, "render", "--out", path)
	assert.ErrorContains(t, err, "creating output file")
	assert.NotContains(t, stderr, "Wrote")
}

func TestWritePage_ReportsRenderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.html")
	boom := errors.New("boom")

	err := writePage(path, func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)

	require.NoError(t, writePage(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<!DOCTYPE html>")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<!DOCTYPE html>", string(data))
}

func TestRenderCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.html")

	out, stderr, err := executeCmd(t, "render", "--out", path, "--plotly-url", "plotly.min.js")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Wrote "+path)

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<script src="plotly.min.js"`)
}

func TestRenderCmd_InvalidDataStillWritesPage(t *testing.T) {
	path := writeFile(t, "bad.yaml", badDataset)

	out, stderr, err := executeCmd(t, "render", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "section rendered without chart")
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "notice-invalid")
	assert.NotContains(t, out, "Plotly.newPlot(")
}

func TestRenderCmd_DataFileFromEnv(t *testing.T) {
	path := writeFile(t, "lunar.yaml", `name: lunar
years: ["2026"]
milestones:
  - year: "2026"
    phase: Regolith Survey
institutions:
  - name: JAXA
    lat: 35.57
    lon: 139.557
`)
	t.Setenv("NEUROGUARD_DATA_FILE", path)

	out, _, err := executeCmd(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "Regolith Survey")
	assert.NotContains(t, out, "Organoid Testing")
}

// --- SQLite store ---

func TestSeedAndDatasetsCmd(t *testing.T) {
	store := filepath.Join(t.TempDir(), "store.db")

	out, _, err := executeCmd(t, "seed", "--db", store)
	require.NoError(t, err)
	assert.Contains(t, out, "Stored dataset neuroguard: 4 milestones, 7 institutions")

	lunar := writeFile(t, "lunar.json", `{"years": ["2026"], "milestones": [{"year": "2026", "phase": "Survey"}],
		"institutions": [{"name": "JAXA", "lat": 35.57, "lon": 139.557}]}`)
	_, _, err = executeCmd(t, "seed", "--db", store, "--data", lunar, "--dataset", "lunar")
	require.NoError(t, err)

	out, _, err = executeCmd(t, "datasets", "--db", store)
	require.NoError(t, err)
	assert.Contains(t, out, "lunar")
	assert.Contains(t, out, "neuroguard")

	out, _, err = executeCmd(t, "show", "--db", store, "--dataset", "lunar")
	require.NoError(t, err)
	assert.Contains(t, out, "Survey")
	assert.NotContains(t, out, "Harvard")

	out, _, err = executeCmd(t, "datasets", "delete", "lunar", "--db", store)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted dataset lunar")

	out, _, err = executeCmd(t, "datasets", "--db", store)
	require.NoError(t, err)
	assert.NotContains(t, out, "lunar")
}

func TestSeedCmd_RejectsInvalidData(t *testing.T) {
	store := filepath.Join(t.TempDir(), "store.db")
	path := writeFile(t, "bad.yaml", badDataset)

	_, _, err := executeCmd(t, "seed", "--db", store, "--data", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid")
}

func TestSeedCmd_RequiresStore(t *testing.T) {
	_, _, err := executeCmd(t, "seed")
	assert.ErrorContains(t, err, "SQLite store is required")
}

func TestRenderCmd_MissingStoredDataset(t *testing.T) {
	store := filepath.Join(t.TempDir(), "store.db")

	out, _, err := executeCmd(t, "render", "--db", store, "--dataset", "absent")
	require.NoError(t, err)
	assert.Contains(t, out, "The dashboard data could not be loaded.")
	assert.Contains(t, out, "dataset not found")
}

func TestDatasetsDeleteCmd_Missing(t *testing.T) {
	store := filepath.Join(t.TempDir(), "store.db")

	_, _, err := executeCmd(t, "datasets", "delete", "ghost", "--db", store)
	assert.ErrorContains(t, err, "dataset not found")
}

// --- configuration ---

func TestConfigFile(t *testing.T) {
	data := writeFile(t, "lunar.yaml", "name: lunar\ninstitutions:\n  - name: ESA\n    lat: 52.2\n    lon: 4.4\n")
	cfg := writeFile(t, "neuroguard.yaml", "data:\n  file: "+data+"\nlog:\n  level: debug\n")

	out, _, err := executeCmd(t, "show", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "DATASET LUNAR")
	assert.Contains(t, out, "ESA")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	_, _, err := executeCmd(t, "show", "--log-level", "loud")
	assert.ErrorContains(t, err, `log.level "loud"`)
}
