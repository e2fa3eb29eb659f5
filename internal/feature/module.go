// Package feature tracks which feature modules are enabled per guild and
// which channels carry a configured topic. It is pure in-process state: no
// network, no storage. The sync layer feeds it from change notifications.
package feature

// Module is an independently toggleable feature bundle. The set is fixed.
type Module string

const (
	ModulePlugin     Module = "plugin"
	ModuleHelix      Module = "helix"
	ModuleEconomy    Module = "economy"
	ModuleGaming     Module = "gaming"
	ModuleModeration Module = "moderation"
	ModuleSecurity   Module = "security"
	ModuleUtility    Module = "utility"
)

// AllModules lists every known module in a stable order.
func AllModules() []Module {
	return []Module{
		ModulePlugin,
		ModuleHelix,
		ModuleEconomy,
		ModuleGaming,
		ModuleModeration,
		ModuleSecurity,
		ModuleUtility,
	}
}

// ParseModule returns the Module for name, or false if the name is unknown.
func ParseModule(name string) (Module, bool) {
	for _, m := range AllModules() {
		if string(m) == name {
			return m, true
		}
	}
	return "", false
}
