// Package writer holds the small generic XML-marshal-and-emit helper
// shared by any output mode that needs to dump a Go value as XML.
package writer

import (
	"encoding/xml"
	"io"
)

// Output marshals value as indented XML and writes it to out.
func Output(out io.Writer, value any) error {
	result, err := xml.MarshalIndent(value, "", " ")
	if err != nil {
		return err
	}
	_, err = out.Write(append(result, '\n'))
	return err
}
