package model

// Document is structured content handed to an ExportWriter.
type Document struct {
	Title string
	Body  string
}

// ExportWriter serializes content to a downloadable file and returns the
// path it was written to. Pure serialization; no core logic depends on it.
type ExportWriter interface {
	WriteText(content string, filename string) (string, error)
	WriteDocument(doc Document, filename string) (string, error)
}
