// ABOUTME: Built-in catalog used when no catalog source is configured
// ABOUTME: Provides Builtins() in cycling order and BuiltinIDs() enumeration

package theme

var builtins = Catalog{
	{ID: "dracula", DisplayName: "Dracula", IsDark: true},
	{ID: "dracula_pro", DisplayName: "Dracula Pro", IsDark: true},
	{ID: "nord", DisplayName: "Nord", IsDark: true},
	{ID: "gruvbox_dark", DisplayName: "Gruvbox Dark", IsDark: true},
	{ID: "gruvbox_light", DisplayName: "Gruvbox Light", IsDark: false},
	{ID: "solarized_dark", DisplayName: "Solarized Dark", IsDark: true},
	{ID: "solarized_light", DisplayName: "Solarized Light", IsDark: false},
	{ID: "catppuccin_mocha", DisplayName: "Catppuccin Mocha", IsDark: true},
	{ID: "catppuccin_latte", DisplayName: "Catppuccin Latte", IsDark: false},
	{ID: "tokyo_night", DisplayName: "Tokyo Night", IsDark: true},
	{ID: "one_dark", DisplayName: "One Dark", IsDark: true},
	{ID: "github_light", DisplayName: "GitHub Light", IsDark: false},
}

// Builtins returns a fresh copy of the built-in catalog.
func Builtins() Catalog {
	return builtins.Clone()
}

// BuiltinIDs returns the IDs of all built-in themes in catalog order.
func BuiltinIDs() []string {
	return builtins.IDs()
}
