package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"Up":        {"up,k", "move up"},
	"Down":      {"down,j", "move down"},
	"Submit":    {"enter", "submit"},
	"Toggle":    {"space", "toggle selection"},
	"ToggleAll": {"a", "toggle all"},
	"Save":      {"ctrl+s", "save text"},
	"Abort":     {"ctrl+c", "quit"},
}

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Submit    key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Save      key.Binding
	Abort     key.Binding
}

// BuildKeyMap applies configOverrides on top of the default keys. Action names are matched
// case-insensitively since viper lowercases map keys.
func BuildKeyMap(configOverrides map[string]string) KeyMap {
	overrides := make(map[string]string, len(configOverrides))
	for action, keys := range configOverrides {
		overrides[strings.ToLower(action)] = keys
	}

	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := overrides[strings.ToLower(action)]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "Up":
			km.Up = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Down":
			km.Down = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Submit":
			km.Submit = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Toggle":
			km.Toggle = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleAll":
			km.ToggleAll = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Save":
			km.Save = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Abort":
			km.Abort = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

// DefaultKeyMap returns the bindings with no configuration overrides
func DefaultKeyMap() KeyMap {
	return BuildKeyMap(nil)
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	parts := strings.Split(keyStr, ",")
	keys := make([]string, 0, len(parts)+1)
	for _, k := range parts {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		keys = append(keys, k)
		// the space bar reports itself as " "
		if k == "space" {
			keys = append(keys, " ")
		}
	}
	if len(keys) == 0 {
		return parseKeyBinding(defaultKey, defaultKey, helpText)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
