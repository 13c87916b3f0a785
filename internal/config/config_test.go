package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOML(t *testing.T) {

	path := writeConfig(t, "prostgen.toml", `
input = " ./proto "
output = "./src/gen"
includes = ["./third_party", "", "./vendor"]
verbose = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./proto", cfg.Input)
	assert.Equal(t, "./src/gen", cfg.Output)
	assert.Equal(t, []string{"./third_party", "./vendor"}, cfg.Includes)
	assert.Equal(t, defaultGlob, cfg.Glob)
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {

	path := writeConfig(t, "prostgen.yaml", `
output: out
glob: "api/*.proto"
protos:
  - a.proto
  - b.proto
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Input)
	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, "api/*.proto", cfg.Glob)
	assert.Equal(t, []string{"a.proto", "b.proto"}, cfg.Protos)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmptyYAML(t *testing.T) {

	cfg, err := Load(writeConfig(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {

	_, err := Load(writeConfig(t, "prostgen.json", "{}"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "unknown.toml", `outptu = "x"`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "unknown.yaml", "outptu: x\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "broken.toml", `input = `))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {

	cfg := Default()
	assert.Error(t, cfg.Validate())

	cfg.Input = "proto"
	assert.Error(t, cfg.Validate())

	cfg.Output = "out"
	assert.NoError(t, cfg.Validate())

	cfg.Input = ""
	cfg.Protos = []string{"a.proto"}
	assert.NoError(t, cfg.Validate())
}
