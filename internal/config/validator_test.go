package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidYAML(t *testing.T) {
	path := writeConfig(t, ".pathvana.yml", `
trailing_slash: true
path_mappings:
  "@": /srv/app
`)

	result, err := Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_ValidJSON(t *testing.T) {
	path := writeConfig(t, ".pathvana.json", `{"trailing_slash": false}`)

	result, err := Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_ValidTOML(t *testing.T) {
	path := writeConfig(t, ".pathvana.toml", `
label_trailing_slash = false

[path_mappings]
"@" = "/srv/app"
`)

	result, err := Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_SyntaxError(t *testing.T) {
	path := writeConfig(t, ".pathvana.json", `{"trailing_slash": `)

	result, err := Validate(path)
	require.NoError(t, err)
	require.False(t, result.Valid)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidate_WrongType(t *testing.T) {
	path := writeConfig(t, ".pathvana.yml", "trailing_slash: maybe\n")

	result, err := Validate(path)
	require.NoError(t, err)
	require.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidate_UnknownKey(t *testing.T) {
	path := writeConfig(t, ".pathvana.yml", "trailing: true\n")

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_EmptyMappingTarget(t *testing.T) {
	path := writeConfig(t, ".pathvana.yml", `
path_mappings:
  "@": ""
`)

	result, err := Validate(path)
	require.NoError(t, err)
	require.False(t, result.Valid)

	found := false
	for _, e := range result.Errors {
		if e.Field == "path_mappings/@" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := Validate(filepath.Join(t.TempDir(), ".pathvana.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetSchemaJSON(t *testing.T) {
	s := GetSchemaJSON()
	assert.Contains(t, s, "trailing_slash")
	assert.Contains(t, s, "path_mappings")
}
