package app

// Section is one top-level navigable view of the client.
type Section string

const (
	SectionAuctions Section = "auctions"
	SectionRegister Section = "register"
	SectionCreate   Section = "create"
	SectionStatus   Section = "status"
)

// Navigator tracks which section is visible. Every transition is legal;
// only one section is active at a time. Side effects of entering a section
// (data loads) belong to the dispatcher, not here.
type Navigator struct {
	display Display
	current Section
}

// NewNavigator creates a navigator showing the auctions section.
func NewNavigator(display Display) *Navigator {
	return &Navigator{display: display, current: SectionAuctions}
}

// Current returns the visible section.
func (n *Navigator) Current() Section {
	return n.current
}

// Show makes the given section the visible one, deactivating all others.
func (n *Navigator) Show(section Section) {
	n.current = section
	n.display.ShowSection(section)
}
