// architecture_test.go
package architecture_test

import (
	"testing"

	"github.com/mstrYoda/go-arctest/pkg/arctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mod = `github\.com/weatherunion/weatherunion-go`

func TestLayeredArchitecture(t *testing.T) {
	arch, err := arctest.New("../")
	require.NoError(t, err)

	err = arch.ParsePackages()
	require.NoError(t, err, "failed to parse packages")

	// Layers are regexes over import-path prefixes.
	domainLayer, err := arctest.NewLayer("domain", `^`+mod+`/internal/models`)
	require.NoError(t, err)

	libraryLayer, err := arctest.NewLayer("library", `^`+mod+`/pkg/(weatherunion|logger)`)
	require.NoError(t, err)

	appLayer, err := arctest.NewLayer("application",
		`^`+mod+`/internal/(app|config|services/weather|services/logger|services/metrics)`)
	require.NoError(t, err)

	handlerLayer, err := arctest.NewLayer("presentation", `^`+mod+`/internal/handlers`)
	require.NoError(t, err)

	layered := arch.NewLayeredArchitecture(domainLayer, libraryLayer, appLayer, handlerLayer)

	err = appLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = appLayer.DependsOnLayer(libraryLayer)
	assert.NoError(t, err)

	err = appLayer.DependsOnLayer(handlerLayer)
	assert.NoError(t, err)

	err = handlerLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = handlerLayer.DependsOnLayer(libraryLayer)
	assert.NoError(t, err)

	violations, err := layered.Check()
	require.NoError(t, err)

	assert.Len(t, violations, 0)

	for _, v := range violations {
		assert.Failf(t, "", "violation: %s", v)
	}
}
