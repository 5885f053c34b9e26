package config

// KeyMappings defines all configurable key bindings of the board
type KeyMappings struct {
	// Todos
	AddTodo     string `yaml:"add_todo"`
	ToggleTodo  string `yaml:"toggle_todo"`
	DeleteTodo  string `yaml:"delete_todo"`
	CompleteAll string `yaml:"complete_all"`
	CycleFilter string `yaml:"cycle_filter"`
	Refresh     string `yaml:"refresh"`

	// Navigation
	PrevTodo string `yaml:"prev_todo"`
	NextTodo string `yaml:"next_todo"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Todos
		AddTodo:     "a",
		ToggleTodo:  "space",
		DeleteTodo:  "d",
		CompleteAll: "A",
		CycleFilter: "f",
		Refresh:     "r",

		// Navigation
		PrevTodo: "k",
		NextTodo: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTodo == "" {
		k.AddTodo = defaults.AddTodo
	}
	if k.ToggleTodo == "" {
		k.ToggleTodo = defaults.ToggleTodo
	}
	if k.DeleteTodo == "" {
		k.DeleteTodo = defaults.DeleteTodo
	}
	if k.CompleteAll == "" {
		k.CompleteAll = defaults.CompleteAll
	}
	if k.CycleFilter == "" {
		k.CycleFilter = defaults.CycleFilter
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.PrevTodo == "" {
		k.PrevTodo = defaults.PrevTodo
	}
	if k.NextTodo == "" {
		k.NextTodo = defaults.NextTodo
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
