package ui

// Content is the text a modal shows for one interactive object.
type Content struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// ContentRegistry maps an interactive object name to its modal text.
type ContentRegistry map[string]Content

// DefaultContent is the built-in table, used when the config provides none.
func DefaultContent() ContentRegistry {
	return ContentRegistry{
		"cartel": {
			Title: "unrafita sandbox",
			Body:  "... y llegamos al final del año y al final de Animación 3D. Tomemos un tiempo para observar hasta donde llegamos y lo que hemos logrado... Y sigamos adelante!",
		},
	}
}

func (r ContentRegistry) Lookup(id string) (Content, bool) {
	c, ok := r[id]
	return c, ok
}
