package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/fabworks/kifab/internal/adapters/driven/config/file"
)

func TestVendorsCmd_ListsKnownVendors(t *testing.T) {
	injectServices(t, nil, nil, nil)

	out, err := execute(t, "vendors")

	require.NoError(t, err)
	assert.Contains(t, out, "jlcpcb")
	assert.Contains(t, out, "pcbway")
	assert.Contains(t, out, "oshpark")
}

func TestVendorsCmd_MarksConfiguredDefault(t *testing.T) {
	injectServices(t, nil, nil, &stubConfig{values: map[string]string{
		configfile.KeyVendor: "pcbway",
	}})

	out, err := execute(t, "vendors")

	require.NoError(t, err)
	assert.Contains(t, out, "* pcbway")
	assert.Contains(t, out, "configured default")
}
