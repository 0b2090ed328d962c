package source

// HTMLFormat implements Format for HTML fragments and pages.
type HTMLFormat struct{}

func init() {
	Register(&HTMLFormat{})
}

func (f *HTMLFormat) Name() string         { return "HTML" }
func (f *HTMLFormat) Extensions() []string { return []string{".html", ".htm", ".xhtml"} }
func (f *HTMLFormat) Load(filename string) ([]Document, error) {
	return readHTML(filename)
}
