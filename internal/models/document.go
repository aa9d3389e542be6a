package models

// RawDocument is an uploaded file held in memory for the lifetime of one request.
type RawDocument struct {
	Filename string
	Data     []byte
}

func (d *RawDocument) Size() int {
	return len(d.Data)
}
