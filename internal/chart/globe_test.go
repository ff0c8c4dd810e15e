package chart

import (
	"math"
	"testing"

	"github.com/alexanderramin/neuroguard/internal/dataset"
	"github.com/alexanderramin/neuroguard/internal/domain"
	"github.com/alexanderramin/neuroguard/internal/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGlobe(t *testing.T) *figure.Figure {
	t.Helper()
	fig, err := Globe(dataset.Default().Institutions, DefaultGlobeOptions())
	require.NoError(t, err)
	return fig
}

func TestGlobe_DefaultDataset(t *testing.T) {
	fig := defaultGlobe(t)

	assert.Equal(t, 7, fig.PointCount())
	require.Len(t, fig.Data, 1)
	assert.Equal(t, figure.TypeScatterGeo, fig.Data[0].Type)
}

func TestGlobe_CoordinatesAreIdentity(t *testing.T) {
	insts := dataset.Default().Institutions
	fig := defaultGlobe(t)

	pts := fig.Points()
	require.Len(t, pts, len(insts))
	for i, inst := range insts {
		assert.Equal(t, inst.Longitude, pts[i].Lon, "%s lon", inst.Name)
		assert.Equal(t, inst.Latitude, pts[i].Lat, "%s lat", inst.Name)
		assert.Equal(t, inst.Name, pts[i].Text)
	}
}

func TestGlobe_ContainsHarvard(t *testing.T) {
	var found bool
	for _, p := range defaultGlobe(t).Points() {
		if p.Text == "Harvard" {
			found = true
			assert.Equal(t, 42.3770, p.Lat)
			assert.Equal(t, -71.1167, p.Lon)
		}
	}
	assert.True(t, found, "Harvard not plotted")
}

func TestGlobe_Layout(t *testing.T) {
	fig := defaultGlobe(t)
	l := fig.Layout
	p := domain.DarkPalette()

	assert.Equal(t, "NeuroGuard Global Network of Innovation", l.Title.Text)
	assert.Equal(t, 600, l.Height)
	require.NotNil(t, l.Geo)
	assert.Equal(t, "orthographic", l.Geo.Projection.Type)
	assert.True(t, l.Geo.ShowLand)
	assert.True(t, l.Geo.ShowOcean)
	assert.Equal(t, "rgb(10,10,10)", l.Geo.LandColor)
	assert.Equal(t, "rgb(30,30,50)", l.Geo.OceanColor)
	assert.Equal(t, p.Background, l.Geo.BGColor)

	tr := fig.Data[0]
	assert.Equal(t, "markers+text", tr.Mode)
	assert.Equal(t, "top center", tr.TextPosition)
	require.NotNil(t, tr.Marker)
	assert.Equal(t, 12, tr.Marker.Size)
	assert.Equal(t, "cyan", tr.Marker.Color)
	require.NotNil(t, tr.Marker.Line)
	assert.Equal(t, 1, tr.Marker.Line.Width)
	assert.Equal(t, "black", tr.Marker.Line.Color)
}

func TestGlobe_Idempotent(t *testing.T) {
	a, err := defaultGlobe(t).JSON()
	require.NoError(t, err)
	b, err := defaultGlobe(t).JSON()
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestGlobe_Errors(t *testing.T) {
	tests := []struct {
		name         string
		institutions []domain.Institution
		wantErr      error
	}{
		{name: "empty", wantErr: ErrNoRecords},
		{
			name:         "latitude out of range",
			institutions: []domain.Institution{{Name: "North", Latitude: 91, Longitude: 0}},
			wantErr:      domain.ErrCoordinateRange,
		},
		{
			name:         "longitude out of range",
			institutions: []domain.Institution{{Name: "East", Latitude: 0, Longitude: -180.5}},
			wantErr:      domain.ErrCoordinateRange,
		},
		{
			name:         "NaN",
			institutions: []domain.Institution{{Name: "Lost", Latitude: math.NaN(), Longitude: 0}},
			wantErr:      domain.ErrCoordinateRange,
		},
		{
			name:         "blank name",
			institutions: []domain.Institution{{Name: " ", Latitude: 1, Longitude: 1}},
			wantErr:      domain.ErrEmptyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := Globe(tt.institutions, DefaultGlobeOptions())
			assert.Nil(t, fig)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGlobe_EscapesNames(t *testing.T) {
	fig, err := Globe([]domain.Institution{{Name: "R&D <Lab>", Latitude: 1, Longitude: 2}}, DefaultGlobeOptions())
	require.NoError(t, err)
	assert.Equal(t, "R&amp;D &lt;Lab&gt;", fig.Data[0].Text[0])
}
