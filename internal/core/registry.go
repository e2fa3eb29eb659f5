// /internal/core/registry.go
package core

var registry = map[string]Command{}

// RegisterCommand registers a command
func RegisterCommand(cmd Command) {
	registry[cmd.Name()] = cmd
}

// GetCommand returns the command with the given name
func GetCommand(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// AllCommands returns all registered commands
func AllCommands() []Command {
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		list = append(list, cmd)
	}
	return list
}
