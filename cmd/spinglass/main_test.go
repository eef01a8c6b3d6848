package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainProblem = `
H = [1.0, 1.0, 1.0]

[[Couplings]]
I = 0
J = 1
Weight = 2.0

[[Couplings]]
I = 1
J = 2
Weight = -1.0
`

const edgeProblem = `
Weights = [[0.0, 2.0], [2.0, 0.0]]
`

const pointsProblem = `
Points = [[0.0, 0.0], [0.1, 0.0], [0.0, 0.1], [5.0, 5.0], [5.1, 5.0], [5.0, 5.1]]
`

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCLI executes the tool and returns the exit code, stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"spinglass"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// field returns the value of the last "| Field | Value |" row named name.
// The state table is always printed last.
func field(out, name string) string {
	var v string
	for _, line := range strings.Split(out, "\n") {
		cells := strings.Split(line, "|")
		if len(cells) >= 3 && strings.TrimSpace(cells[1]) == name {
			v = strings.TrimSpace(cells[2])
		}
	}
	return v
}

func TestMaxCut_SingleEdge(t *testing.T) {
	path := writeFile(t, "edge.toml", edgeProblem)

	code, out, errOut := runCLI(t, "--sweeps", "200", "--repetitions", "20", "maxcut", "--weights", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "-2", field(out, "Energy"))
	assert.Equal(t, "2", field(out, "Cut"))
	assert.Equal(t, "1", field(out, "Offset"))
	assert.Contains(t, []string{"+-", "-+"}, field(out, "Spins"))

	code, out, errOut = runCLI(t, "maxcut", "--exact", "--weights", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "2", field(out, "Cut"))
}

func TestMaxCut_RejectsInvalidMatrix(t *testing.T) {
	path := writeFile(t, "bad.toml", "Weights = [[0.0, 1.0], [2.0, 0.0]]\n")
	code, _, errOut := runCLI(t, "maxcut", "--weights", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid input")

	path = writeFile(t, "model.toml", chainProblem)
	code, _, errOut = runCLI(t, "maxcut", "--weights", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, errNoWeights.Error())
}

func TestAnneal_Clamped(t *testing.T) {
	path := writeFile(t, "chain.toml", chainProblem)

	code, out, errOut := runCLI(t, "--seed", "5", "--sweeps", "200", "anneal", "--problem", path, "--clamp", "0=-1")
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(field(out, "Spins"), "-"))
	assert.Equal(t, "-2", field(out, "Energy"))
	assert.Empty(t, field(out, "Cut"), "explicit models have no cut")

	code, _, errOut = runCLI(t, "anneal", "--problem", path, "--clamp", "0=2")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "clamp")

	code, _, errOut = runCLI(t, "anneal", "--problem", path, "--clamp", "7=+1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "clamped node not in model")
}

func TestAnneal_SameSeedSameResult(t *testing.T) {
	path := writeFile(t, "chain.toml", chainProblem)
	_, a, _ := runCLI(t, "--seed", "9", "--sweeps", "5", "--schedule", "linear", "--beta-start", "0", "anneal", "--problem", path)
	_, b, _ := runCLI(t, "--seed", "9", "--sweeps", "5", "--schedule", "linear", "--beta-start", "0", "anneal", "--problem", path)
	assert.Equal(t, a, b)
}

func TestEnumerate_Chain(t *testing.T) {
	path := writeFile(t, "chain.toml", chainProblem)

	code, out, errOut := runCLI(t, "enumerate", "--problem", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "+--", field(out, "Spins"))
	assert.Equal(t, "-4", field(out, "Energy"))
	// degeneracy column of the -4 and -2 levels
	assert.Regexp(t, `\|\s+-4\s+\|\s+1\s+\|\s+0\.70`, out)
	assert.Regexp(t, `\|\s+-2\s+\|\s+3\s+\|`, out)

	code, out, errOut = runCLI(t, "enumerate", "--problem", path, "--clamp", "0=-1")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "-2", field(out, "Energy"))
	assert.Regexp(t, `\|\s+2\s+\|\s+1\s+\|`, out)
}

func TestEstimate_Chain(t *testing.T) {
	path := writeFile(t, "chain.toml", chainProblem)

	code, out, errOut := runCLI(t, "--sweeps", "200", "--repetitions", "50", "--workers", "3", "--temperature", "0.5",
		"estimate", "--problem", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "-4", field(out, "Energy"))
	assert.Contains(t, out, "T=0.5")

	code, _, errOut = runCLI(t, "--temperature", "0", "estimate", "--problem", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "temperature")
}

func TestCluster_TwoGroups(t *testing.T) {
	path := writeFile(t, "points.toml", pointsProblem)

	code, out, errOut := runCLI(t, "cluster", "--exact", "--points", path)
	require.Equal(t, 0, code, errOut)

	want := []string{"A", "A", "A", "B", "B", "B"}
	var got []string
	for _, line := range strings.Split(out, "\n") {
		cells := strings.Split(line, "|")
		if len(cells) >= 4 && strings.Contains(cells[2], "(") {
			got = append(got, strings.TrimSpace(cells[3]))
		}
	}
	assert.Equal(t, want, got)
}

func TestGenerate_RoundTrip(t *testing.T) {
	code, out, errOut := runCLI(t, "--seed", "3", "generate", "--family", "cycle", "--n", "4")
	require.Equal(t, 0, code, errOut)

	path := writeFile(t, "cycle.toml", out)
	p, err := loadProblem(path)
	require.NoError(t, err)
	require.Len(t, p.Weights, 4)
	assert.Equal(t, []float64{0, 1, 0, 1}, p.Weights[0])

	code, out, errOut = runCLI(t, "maxcut", "--exact", "--weights", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "4", field(out, "Cut"))

	code, _, _ = runCLI(t, "generate", "--family", "hypercube")
	assert.Equal(t, 1, code)
	code, _, _ = runCLI(t, "generate", "--family", "cycle", "--n", "2")
	assert.Equal(t, 1, code)
}

func TestUnknownCommandFlag(t *testing.T) {
	code, _, _ := runCLI(t, "anneal")
	assert.Equal(t, 1, code, "missing required --problem")

	code, _, _ = runCLI(t, "anneal", "--problem", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Equal(t, 1, code)
}
