// /internal/discord/command_cache.go
package discord

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// guildCachePath returns where a guild's registered-command fingerprints live.
func guildCachePath(guildID string) string {
	return filepath.Join("data", "commands", guildID+".json")
}

// loadGuildCommandHashes loads the name-to-fingerprint map for a guild. A
// missing or corrupt file just means everything gets re-registered.
func loadGuildCommandHashes(guildID string) map[string]string {
	hashes := make(map[string]string)
	if file, err := os.ReadFile(guildCachePath(guildID)); err == nil {
		_ = json.Unmarshal(file, &hashes)
	}
	return hashes
}

// saveGuildCommandHashes persists the fingerprint map for a guild.
func saveGuildCommandHashes(guildID string, hashes map[string]string) {
	path := guildCachePath(guildID)
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	data, _ := json.MarshalIndent(hashes, "", "  ")
	_ = os.WriteFile(path, data, 0644)
}
