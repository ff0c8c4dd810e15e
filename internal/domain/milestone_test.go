package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testYears = []string{"2025", "2027", "2030", "2035+"}

func TestMilestoneValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Milestone
		wantErr error
	}{
		{"valid", Milestone{Year: "2030", Phase: "Human Application"}, nil},
		{"open-ended label", Milestone{Year: "2035+", Phase: "Mars Deployment"}, nil},
		{"unknown year", Milestone{Year: "2031", Phase: "Late"}, ErrUnknownYear},
		{"blank year", Milestone{Year: " ", Phase: "Blank"}, ErrEmptyField},
		{"blank phase", Milestone{Year: "2025"}, ErrEmptyField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate(testYears)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMilestoneValidate_MessageListsAllowedYears(t *testing.T) {
	m := Milestone{Year: "1999", Phase: "Too early"}
	err := m.Validate(testYears)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"1999"`)
	assert.Contains(t, err.Error(), "2025, 2027, 2030, 2035+")
}
