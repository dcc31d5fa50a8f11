package present

// Section names a display group. The screen shows them in Sections() order.
type Section string

const (
	SectionCovers Section = "covers"
	SectionTitles Section = "titles"
)

// Sections returns the fixed group order.
func Sections() []Section {
	return []Section{SectionCovers, SectionTitles}
}

// String returns the section key.
func (s Section) String() string {
	return string(s)
}
