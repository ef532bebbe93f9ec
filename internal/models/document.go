package models

// RawDocument is an uploaded file as received from the client.
type RawDocument struct {
	Filename string
	Content  []byte
}
