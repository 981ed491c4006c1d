package ports

// DocumentSink writes an exported document to a local file (the download fallback).
type DocumentSink interface {
	WriteDocument(name string, document string) (path string, err error)
}
