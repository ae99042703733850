package svgdoc

import (
	"os"
)

// Read parses the document stored in the named file.
func Read(path string, opts ...ParseOption) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, opts...)
}

// Save writes the pretty printed document to the named file,
// replacing its content.
func Save(path string, doc *Element, opts ...EncodeOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, doc, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
