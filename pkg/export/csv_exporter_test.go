package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	out, err := exporter.Render(Dataset{
		Headers: []string{"Course", "Credits", "Grade"},
		Rows: []map[string]string{
			{"Course": "CS101", "Credits": "3", "Grade": "A"},
			{"Course": "MA101", "Credits": "3"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Course,Credits,Grade\nCS101,3,A\nMA101,3,\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}
