// Copyright 2025, Malachi Burnett

package gcg

import (
	"bytes"
	"encoding/xml"
	"io"
	"log"
	"slices"
)

// Merger splices a circuit into a template document. The inserted circuit
// uses the template's line ending, CRLF if the template has any.
type Merger struct {
	// Strict reports ErrCircuitMissing when the template has no circuit of
	// the requested name. Otherwise the template is returned unchanged.
	Strict  bool
	Verbose bool // If set, logs each splice.
}

// Merge replaces the first top-level circuit named name in template with
// the circuit of the same name from doc. Every byte of the template outside
// the replaced element is kept as is.
func (mg *Merger) Merge(template []byte, doc *CircuitGroup, name string) (merged []byte, err error) {
	circuit := doc.Circuit(name)
	if circuit == nil {
		err = ErrCircuitMissing(name)
		return
	}

	return mg.Splice(template, circuit, name)
}

// Splice replaces the first top-level circuit named name in template with
// circuit, at the same position.
func (mg *Merger) Splice(template []byte, circuit *Circuit, name string) (merged []byte, err error) {
	start, end, err := locate(template, name)
	if err != nil {
		return
	}

	if start < 0 {
		if mg.Strict {
			err = ErrCircuitMissing(name)
			return
		}
		if mg.Verbose {
			log.Printf("gcg: circuit %v not in template, nothing replaced", name)
		}
		merged = template
		return
	}

	body, err := circuit.Marshal(indentAt(template, start))
	if err != nil {
		return
	}
	if bytes.Contains(template, []byte("\r\n")) {
		body = bytes.ReplaceAll(body, []byte("\n"), []byte("\r\n"))
	}

	if mg.Verbose {
		log.Printf("gcg: circuit %v replaced bytes %d-%d with %d bytes", name, start, end, len(body))
	}

	merged = slices.Concat(template[:start], body, template[end:])
	return
}

// locate finds the byte range of the first circuit named name among the
// root's children. start is -1 if there is none. The whole template is
// scanned so that malformed input is always reported.
func locate(template []byte, name string) (start, end int64, err error) {
	start, end = -1, -1

	dec := xml.NewDecoder(bytes.NewReader(template))
	depth := 0
	rooted := false

	for {
		offset := dec.InputOffset()
		var tok xml.Token
		tok, err = dec.Token()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			err = &ErrTemplate{Err: err}
			return
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 1 && start < 0 && isCircuit(t, name) {
				err = dec.Skip()
				if err != nil {
					err = &ErrTemplate{Err: err}
					return
				}
				start, end = offset, dec.InputOffset()
				continue
			}
			depth++
			rooted = true
		case xml.EndElement:
			depth--
		}
	}

	if !rooted {
		err = &ErrTemplate{Err: ErrTemplateEmpty}
	}

	return
}

func isCircuit(elem xml.StartElement, name string) bool {
	if elem.Name.Local != "Circuit" {
		return false
	}
	for _, attr := range elem.Attr {
		if attr.Name.Local == "Name" {
			return attr.Value == name
		}
	}
	return false
}

// indentAt returns the blanks between the start of the line and offset, or
// nothing if other text precedes offset on its line.
func indentAt(data []byte, offset int64) string {
	n := int(offset)
	for n > 0 && (data[n-1] == ' ' || data[n-1] == '\t') {
		n--
	}
	if n > 0 && data[n-1] != '\n' {
		return ""
	}
	return string(data[n:offset])
}
