package models

// Todo is a single to-do record in the collection
type Todo struct {
	ID        int    `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
}

// GetID lets output formatters print just the ID in quiet mode
func (t *Todo) GetID() int {
	return t.ID
}

// Clone returns a copy that shares no state with t
func (t *Todo) Clone() *Todo {
	c := *t
	return &c
}

// TodoPatch carries the optional fields of a partial update.
// A nil pointer means the caller did not supply that field.
type TodoPatch struct {
	Task      *string
	Completed *bool
}

// Apply writes the supplied fields onto t.
// An empty Task counts as not supplied, same as an absent one.
func (p TodoPatch) Apply(t *Todo) {
	if p.Task != nil && *p.Task != "" {
		t.Task = *p.Task
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// SeedTodos returns the records every fresh collection starts with
func SeedTodos() []*Todo {
	return []*Todo{
		{ID: 1, Task: "Learn Node.js", Completed: false, Priority: DefaultPriority},
		{ID: 2, Task: "Build a REST API", Completed: false, Priority: DefaultPriority},
	}
}
