// /internal/feature/registry_test.go
package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryDefaultsToDisabled(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Enabled("g1", ModuleModeration))
	assert.False(t, r.Known("g1"))
}

func TestRegistrySetModulesReplacesWholesale(t *testing.T) {
	r := NewRegistry()

	r.SetModules("g1", []Module{ModuleModeration, ModuleEconomy})
	assert.True(t, r.Enabled("g1", ModuleModeration))
	assert.True(t, r.Enabled("g1", ModuleEconomy))

	r.SetModules("g1", []Module{ModuleGaming})
	assert.False(t, r.Enabled("g1", ModuleModeration))
	assert.False(t, r.Enabled("g1", ModuleEconomy))
	assert.True(t, r.Enabled("g1", ModuleGaming))
}

func TestRegistrySetModulesIsIdempotent(t *testing.T) {
	r := NewRegistry()

	r.SetModules("g1", []Module{ModuleSecurity})
	r.SetModules("g1", []Module{ModuleSecurity})

	assert.Equal(t, []Module{ModuleSecurity}, r.Modules("g1"))
	assert.True(t, r.Known("g1"))
}

func TestRegistryGuildsAreIndependent(t *testing.T) {
	r := NewRegistry()

	r.SetModules("g1", []Module{ModuleEconomy})
	assert.False(t, r.Enabled("g2", ModuleEconomy))
}

func TestParseModule(t *testing.T) {
	m, ok := ParseModule("moderation")
	assert.True(t, ok)
	assert.Equal(t, ModuleModeration, m)

	_, ok = ParseModule("nonsense")
	assert.False(t, ok)
}

func TestTopicCache(t *testing.T) {
	c := NewTopicCache()

	_, ok := c.Topic("chan")
	assert.False(t, ok)

	c.Set("chan", "gardening")
	topic, ok := c.Topic("chan")
	assert.True(t, ok)
	assert.Equal(t, "gardening", topic)

	c.Delete("chan")
	_, ok = c.Topic("chan")
	assert.False(t, ok)
}
