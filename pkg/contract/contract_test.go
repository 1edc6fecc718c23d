package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cursorcult/cursorcult/pkg/contract"
)

func TestParseTagVersion(t *testing.T) {
	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"v0", 0, true},
		{"v1", 1, true},
		{"v10", 10, true},
		{"v123", 123, true},
		{"v01", 0, false},
		{"v00", 0, false},
		{"version1", 0, false},
		{"v", 0, false},
		{"v-1", 0, false},
		{"v1.0", 0, false},
		{"1", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := contract.ParseTagVersion(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOK, contract.IsValidTagName(tt.name))
			if tt.wantOK {
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

func TestFormatTag(t *testing.T) {
	assert.Equal(t, "v0", contract.FormatTag(0))
	assert.Equal(t, "v42", contract.FormatTag(42))

	v, ok := contract.ParseTagVersion(contract.FormatTag(7))
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestCIWorkflowYMLIsValidYAML(t *testing.T) {
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(contract.CIWorkflowYML), &doc))
	assert.Contains(t, doc, "jobs")
	assert.Equal(t, "ccverify", doc["name"])
}

func TestCoreFileSets(t *testing.T) {
	core := contract.CoreFiles()
	assert.Contains(t, core, "LICENSE")
	assert.Contains(t, core, "README.md")
	assert.Contains(t, core, "RULES.md")
	assert.Len(t, core, 3)

	ci := contract.CIWorkflowPaths()
	assert.Contains(t, ci, ".github/workflows/ccverify.yml")
	assert.Contains(t, ci, ".github/workflows/ccverify.yaml")
	assert.Len(t, ci, 2)
}
