package models

// Document is one named unit of input text: a file, a directory entry or a
// raw string passed on the command line.
type Document struct {
	ID   string `json:"doc_id"`
	Text string `json:"text"`
}
