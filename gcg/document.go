package gcg

import (
	"bytes"
	"encoding/xml"
	"io"
)

const (
	VERSION      = "1.2"                                           // Document version written by Document.
	CIRCUIT_NAME = "InstructionMemory"                             // Default synthesized circuit name.
	HEADER       = `<?xml version="1.0" encoding="utf-8"?>` + "\n" // Declaration for standalone documents.
	INDENT       = "  "
)

// CircuitGroup is the document root.
type CircuitGroup struct {
	XMLName  xml.Name   `xml:"CircuitGroup"`
	Version  string     `xml:"Version,attr"`
	Circuits []*Circuit `xml:"Circuit"`
}

// Circuit is a named collection of gates and wires.
type Circuit struct {
	XMLName xml.Name `xml:"Circuit"`
	Name    string   `xml:"Name,attr"`
	Gates   Gates    `xml:"Gates"`
	Wires   Wires    `xml:"Wires"`
}

type Gates struct {
	Gate []Gate `xml:"Gate"`
}

type Wires struct {
	Wire []Wire `xml:"Wire"`
}

// Gate is a single gate element. NumInputs is only present on AND and OR
// gates.
type Gate struct {
	Type      string `xml:"Type,attr"`
	Name      string `xml:"Name,attr"`
	ID        int    `xml:"ID,attr"`
	NumInputs *int   `xml:"NumInputs,attr,omitempty"`
	Point     Point  `xml:"Point"`
}

type Point struct {
	X     int `xml:"X,attr"`
	Y     int `xml:"Y,attr"`
	Angle int `xml:"Angle,attr"`
}

// Wire connects a source port to a destination port.
type Wire struct {
	From Endpoint `xml:"From"`
	To   Endpoint `xml:"To"`
}

type Endpoint struct {
	ID   int `xml:"ID,attr"`
	Port int `xml:"Port,attr"`
}

// Document wraps circuits in a new root.
func Document(circuits ...*Circuit) *CircuitGroup {
	return &CircuitGroup{
		Version:  VERSION,
		Circuits: circuits,
	}
}

// Circuit returns the first circuit with the given name, or nil.
func (grp *CircuitGroup) Circuit(name string) *Circuit {
	for _, circuit := range grp.Circuits {
		if circuit.Name == name {
			return circuit
		}
	}
	return nil
}

// Marshal renders the standalone document.
func (grp *CircuitGroup) Marshal() (data []byte, err error) {
	body, err := xml.MarshalIndent(grp, "", INDENT)
	if err != nil {
		return
	}

	buf := bytes.NewBufferString(HEADER)
	buf.Write(body)
	buf.WriteByte('\n')
	data = buf.Bytes()
	return
}

// Marshal renders the circuit element alone. Every line after the first
// starts with prefix, so the result can be placed at a column already
// indented by prefix.
func (c *Circuit) Marshal(prefix string) (data []byte, err error) {
	data, err = xml.MarshalIndent(c, prefix, INDENT)
	if err != nil {
		return
	}
	data = bytes.TrimPrefix(data, []byte(prefix))
	return
}

// Decode parses a document.
func Decode(r io.Reader) (grp *CircuitGroup, err error) {
	grp = &CircuitGroup{}
	err = xml.NewDecoder(r).Decode(grp)
	if err != nil {
		grp = nil
		err = &ErrDocument{Err: err}
	}
	return
}
