package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_YAML(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "roadmap.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "lunar", s.Name)
	assert.Equal(t, []string{"2026", "2028", "2031"}, s.Years)
	require.Len(t, s.Milestones, 3)
	assert.Nil(t, s.Milestones[0].Stagger)
	require.NotNil(t, s.Milestones[1].Stagger)
	assert.Equal(t, 0.5, *s.Milestones[1].Stagger)
	require.Len(t, s.Institutions, 2)
	assert.Equal(t, 139.5570, *s.Institutions[1].Lon)
}

func TestLoadFile_JSON(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "roadmap.json"))
	require.NoError(t, err)

	assert.Equal(t, "lunar", s.Name)
	require.Len(t, s.Milestones, 2)
	require.Len(t, s.Institutions, 1)
	assert.Equal(t, 52.2181, *s.Institutions[0].Lat)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadmap.csv")
	require.NoError(t, os.WriteFile(path, []byte("year,phase\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dataset file extension")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading dataset file")
}

func TestParseYAML_RejectsUnknownFields(t *testing.T) {
	_, err := ParseYAML([]byte("name: x\ncolour: blue\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestParseJSON_RejectsUnknownFields(t *testing.T) {
	_, err := ParseJSON([]byte(`{"name": "x", "colour": "blue"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestExport_YAMLRoundTripPreservesDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, FromDataset(Default())))

	s, err := ParseYAML(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Default(), Convert(s))
}

func TestExport_JSONKeepsAmpersandReadable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, FromDataset(Default())))

	assert.Contains(t, buf.String(), "mice & primates")
	s, err := ParseJSON(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Default(), Convert(s))
}
