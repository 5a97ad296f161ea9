package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathvana/pathvana/internal/perrors"
)

func TestExpandTarget_Folder(t *testing.T) {
	got, err := ExpandTarget("${folder}/src", "/proj", "/home/u")
	require.NoError(t, err)
	assert.Equal(t, "/proj/src", got)
}

func TestExpandTarget_Literal(t *testing.T) {
	got, err := ExpandTarget("/srv/app", "/proj", "/home/u")
	require.NoError(t, err)
	assert.Equal(t, "/srv/app", got)
}

func TestExpandTarget_TemplateVariables(t *testing.T) {
	got, err := ExpandTarget("{{.HOME}}/go/{{.FOLDER | base}}", "/proj/app", "/home/u")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/go/app", got)
}

func TestExpandTarget_SprigFunctions(t *testing.T) {
	got, err := ExpandTarget(`/data/{{"App" | lower}}`, "/proj", "/home/u")
	require.NoError(t, err)
	assert.Equal(t, "/data/app", got)
}

func TestExpandTarget_InvalidTemplate(t *testing.T) {
	_, err := ExpandTarget("{{.HOME", "/proj", "/home/u")
	require.Error(t, err)

	var confErr *perrors.ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, "path_mappings", confErr.Field)
}
