package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-vector/scalar"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"length", []string{"length", "3,4"}, "5\n"},
		{"length 3d", []string{"length", "2,3,6"}, "7\n"},
		{"normalize", []string{"normalize", "0,5"}, "X:0 Y:1\n"},
		{"normalize zero", []string{"normalize", "0,0,0"}, "X:0 Y:0 Z:0\n"},
		{"normalize fallback", []string{"normalize", "--allow-zero=false", "0,0"}, "X:0 Y:1\n"},
		{"normalize fallback 4d", []string{"normalize", "--allow-zero=false", "0,0,0,0"}, "X:0 Y:0 Z:0 W:1\n"},
		{"dot", []string{"dot", "1,2,3", "4,5,6"}, "32\n"},
		{"cross 2d", []string{"cross", "1,0", "0,1"}, "1\n"},
		{"cross 3d", []string{"cross", "1,0,0", "0,1,0"}, "X:0 Y:0 Z:1\n"},
		{"lerp", []string{"lerp", "0,0", "10,20", "0.25"}, "X:2.5 Y:5\n"},
		{"convert", []string{"convert", "--to", "i32", "3.7,-1.9"}, "X:3 Y:-1\n"},
		{"convert default", []string{"convert", "0.5,1,2"}, "X:0.5 Y:1 Z:2\n"},
		{"convert u8 in range", []string{"convert", "--to", "u8", "255,1,7,8"}, "X:255 Y:1 Z:7 W:8\n"},
		{"length parenthesized negative", []string{"length", "(-3,4)"}, "5\n"},
		{"length bracket spaces", []string{"length", "[ -3, 4 ]"}, "5\n"},
		{"length after dashes", []string{"length", "--", "-3,4"}, "5\n"},
		{"dot bracketed negative", []string{"dot", "[-1,2]", "[3,4]"}, "5\n"},
		{"dot after dashes", []string{"dot", "--", "-1,2", "3,4"}, "5\n"},
		{"lerp negative amount", []string{"lerp", "0,0", "10,10", "[-0.5]"}, "X:-5 Y:-5\n"},
		{"lerp amount after dashes", []string{"lerp", "0,0", "10,10", "--", "-0.5"}, "X:-5 Y:-5\n"},
		{"convert bracketed negative", []string{"convert", "--to", "i8", "[-1.5,100]"}, "X:-1 Y:100\n"},
		{"lengths bracketed", []string{"lengths", "[-3,4]", "[6,-8]"}, "5\n10\n"},
		{"centroid after dashes", []string{"centroid", "--", "-2,0", "2,4"}, "X:0 Y:2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"one component", []string{"length", "3"}},
		{"five components", []string{"length", "1,2,3,4,5"}},
		{"not a number", []string{"length", "1,x"}},
		{"arity mismatch", []string{"dot", "1,2", "1,2,3"}},
		{"cross 4d", []string{"cross", "1,0,0,0", "0,1,0,0"}},
		{"bad amount", []string{"lerp", "0,0", "1,1", "half"}},
		{"bad kind", []string{"convert", "--to", "f16", "1,2"}},
		{"unclosed bracket", []string{"length", "[1,2"}},
		{"empty brackets", []string{"length", "[]"}},
		{"bad bracketed amount", []string{"lerp", "0,0", "1,1", "(x)"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.ErrorIs(t, err, scalar.ErrInvalidArgument)
		})
	}

	_, err := run(t, "--output", "json", "length", "3,4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestLeadingDashNeedsBrackets(t *testing.T) {
	_, err := run(t, "dot", "-1,2", "3,4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shorthand flag")

	out, err := run(t, "dot", "[-1,2]", "3,4")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1,2", "1,2"},
		{"[-1,2]", "-1,2"},
		{"(-1,2,3)", "-1,2,3"},
		{" [ 1,2 ] ", "1,2"},
		{"[1,2)", "[1,2)"},
		{"[", "["},
		{"[]", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, unwrap(tc.in), "unwrap(%q)", tc.in)
	}
}

func TestYAMLResult(t *testing.T) {
	out, err := run(t, "-o", "yaml", "lerp", "0,0", "10,20", "0.5")
	require.NoError(t, err)

	var r result
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, result{
		Op:     "lerp",
		Inputs: []string{"X:0 Y:0", "X:10 Y:20", "0.5"},
		Value:  "X:5 Y:10",
	}, r)
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 31)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, out, "Vector4D")

	out, err = run(t, "types", "--output", "yaml")
	require.NoError(t, err)
	var rows []struct {
		Name  string `yaml:"name"`
		Bytes int    `yaml:"bytes"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 30)
	assert.Equal(t, "Byte2", rows[0].Name)
	assert.Equal(t, 2, rows[0].Bytes)
}

func TestKernels(t *testing.T) {
	out, err := run(t, "kernels", "--generic", "-o", "yaml")
	require.NoError(t, err)

	var r struct {
		Selected    string            `yaml:"selected"`
		Operations  map[string]string `yaml:"operations"`
		Accelerated bool              `yaml:"accelerated"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "generic", r.Selected)
	assert.False(t, r.Accelerated)
	assert.Len(t, r.Operations, 6)

	out, err = run(t, "kernels")
	require.NoError(t, err)
	assert.Contains(t, out, "selected")
	assert.Contains(t, out, "Distance32")
}

func TestBatchCommands(t *testing.T) {
	out, err := run(t, "lengths", "3,4", "6,8", "0,0")
	require.NoError(t, err)
	assert.Equal(t, "5\n10\n0\n", out)

	out, err = run(t, "lengths", "2,3,6", "0,0,5")
	require.NoError(t, err)
	assert.Equal(t, "7\n5\n", out)

	out, err = run(t, "centroid", "0,0,0", "2,4,6")
	require.NoError(t, err)
	assert.Equal(t, "X:1 Y:2 Z:3\n", out)

	_, err = run(t, "lengths", "1,2", "1,2,3")
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)

	out, err = run(t, "-o", "yaml", "lengths", "3,4", "5,12")
	require.NoError(t, err)
	var r result
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, []string{"5", "13"}, r.Values)
	assert.Empty(t, r.Value)
}

func TestVerboseLogsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--verbose", "lengths", "3,4"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "5\n", stdout.String())
	assert.Contains(t, stderr.String(), "veccalc: kernels ")
	assert.Contains(t, stderr.String(), "veccalc: lengths [X:3 Y:4]")
}

func TestEnvironmentDefaults(t *testing.T) {
	t.Setenv("VECCALC_OUTPUT", "yaml")
	out, err := run(t, "length", "3,4")
	require.NoError(t, err)
	assert.Contains(t, out, "op: length")

	out, err = run(t, "--output", "text", "length", "3,4")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("VECCALC_TEST_BOOL", "on")
	assert.True(t, getEnvBool("VECCALC_TEST_BOOL", false))
	t.Setenv("VECCALC_TEST_BOOL", "no")
	assert.False(t, getEnvBool("VECCALC_TEST_BOOL", true))
	t.Setenv("VECCALC_TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("VECCALC_TEST_BOOL", true))
}
