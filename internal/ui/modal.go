package ui

// Modal shows the content registered for an object id. Visibility is a
// single flag; a second Show replaces the text without stacking.
type Modal struct {
	Content ContentRegistry
	Title   string
	Body    string
	Visible bool
}

func NewModal(content ContentRegistry) *Modal {
	if content == nil {
		content = ContentRegistry{}
	}
	return &Modal{Content: content}
}

// Show displays the entry for id. Unknown ids are ignored.
func (m *Modal) Show(id string) {
	c, ok := m.Content.Lookup(id)
	if !ok {
		return
	}
	m.Title = c.Title
	m.Body = c.Body
	m.Visible = true
}

func (m *Modal) Hide() {
	m.Visible = false
}
