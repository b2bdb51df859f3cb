package domain

// Zone is a named location of NeoCity
type Zone struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Events      []string `yaml:"events,omitempty" json:"events,omitempty"`
}

// AddEvent appends an event to the zone
func (z *Zone) AddEvent(event string) {
	z.Events = append(z.Events, event)
}

// String formats the zone as "name: description"
func (z Zone) String() string {
	return z.Name + ": " + z.Description
}
