package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/metalcalc/internal/cli/commands"
	"github.com/leapstack-labs/metalcalc/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "metalcalc", cmd.Use)

	for _, flag := range []string{"config", "output", "precision", "verbose", "cache-size"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	want := []string{
		"version", "molar-mass", "amount", "mass", "coeff", "fractions", "elements",
		"convert", "parse", "table", "repl", "doctor", "init", "completion",
	}
	for _, name := range want {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	mm, _, err := cmd.Find([]string{"mm"})
	require.NoError(t, err)
	assert.Equal(t, "molar-mass", mm.Name())
}

func TestRootDefaultsToMarkdownWhenPiped(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "molar-mass", "Fe2O3")
	require.NoError(t, err)
	assert.Contains(t, out, "| Fe2O3 | 159.6882 |")
	testutil.AssertNoANSI(t, out)
}

func TestRootFlagsOverrideConfig(t *testing.T) {
	dir := testutil.SetupTestProject(t, "output: markdown\nprecision: 2\naliases:\n  hematite: Fe2O3\n")
	t.Chdir(dir)

	out, _, err := run(t, "mm", "hematite")
	require.NoError(t, err)
	assert.Contains(t, out, "| Fe2O3 | 159.69 |", "config file is found and aliases apply")

	out, _, err = run(t, "mm", "hematite", "--precision", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "| Fe2O3 | 159.7 |")

	out, _, err = run(t, "-o", "json", "mm", "hematite")
	require.NoError(t, err)
	var results []commands.MolarMassResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Fe2O3", results[0].Formula)
}

func TestRootEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("METALCALC_OUTPUT", "yaml")

	out, _, err := run(t, "coeff", "Fe2O3", "Fe")
	require.NoError(t, err)
	assert.Contains(t, out, "formula: Fe2O3")
	assert.Contains(t, out, "value: 2")
}

func TestRootExplicitConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfgPath := filepath.Join(t.TempDir(), "plant.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: json\naliases:\n  lime: CaO\n"), 0600))

	out, _, err := run(t, "--config", cfgPath, "elements", "lime")
	require.NoError(t, err)
	assert.Contains(t, out, `"symbol": "Ca"`)
}

func TestRootErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := run(t, "-o", "html", "mm", "Fe")
	assert.ErrorContains(t, err, "invalid configuration")

	_, _, err = run(t, "mm", "Fe2(O3")
	assert.ErrorContains(t, err, "column")

	_, _, err = run(t, "--cache-size", "-3", "mm", "Fe")
	assert.Error(t, err)
}

func TestRootVerboseLogging(t *testing.T) {
	dir := testutil.SetupTestProject(t, "output: markdown\n")
	t.Chdir(dir)

	_, errOut, err := run(t, "-v", "mm", "SiO2")
	require.NoError(t, err)
	assert.Contains(t, errOut, "using config file")
	assert.Contains(t, errOut, "formula cached")
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "metalcalc")

	_, _, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}
