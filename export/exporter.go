// Copyright 2025, Malachi Burnett

package export

import (
	"bytes"
	"io"
	"io/fs"
	"log"

	"github.com/MalachiBurnett/Logic-Gate-CPU/gcg"
	"github.com/MalachiBurnett/Logic-Gate-CPU/rom"
)

const DEFAULT_TEMPLATE = "template.xml"

// Exporter renders a memory image in each export format.
type Exporter struct {
	CircuitName string // Name of the synthesized circuit.
	Selects     int    // Select lines; zero means rom.DEFAULT_SELECTS.
	TemplateFS  fs.FS  // File system holding the gcg template.
	Template    string // Template file name within TemplateFS.
	Strict      bool   // If set, a template without the circuit is an error.
	Verify      bool   // If set, checks the synthesized network against the image.
	Verbose     bool   // If set, logs synthesis and merge details.
}

// NewExporter returns an exporter with the default circuit and template
// names.
func NewExporter() *Exporter {
	return &Exporter{
		CircuitName: gcg.CIRCUIT_NAME,
		Template:    DEFAULT_TEMPLATE,
	}
}

// Render produces the complete output for a format. Nothing is produced
// unless every step succeeds.
func (ex *Exporter) Render(format Format, img rom.Image) (data []byte, err error) {
	defer func() {
		if err != nil {
			data = nil
			err = &ErrExport{Format: format, Err: err}
		}
	}()

	switch format {
	case FORMAT_BIN:
		err = img.Validate()
		if err != nil {
			return
		}
		buf := &bytes.Buffer{}
		_, err = img.WriteTo(buf)
		data = buf.Bytes()
	case FORMAT_XML, FORMAT_IC:
		var circuit *gcg.Circuit
		circuit, err = ex.synthesize(img)
		if err != nil {
			return
		}
		data, err = gcg.Document(circuit).Marshal()
	case FORMAT_GCG:
		var circuit *gcg.Circuit
		circuit, err = ex.synthesize(img)
		if err != nil {
			return
		}
		var template []byte
		template, err = ex.template()
		if err != nil {
			return
		}
		mg := &gcg.Merger{Strict: ex.Strict, Verbose: ex.Verbose}
		data, err = mg.Merge(template, gcg.Document(circuit), ex.name())
	default:
		err = ErrFormatInvalid
	}

	return
}

// Export renders a format and writes it to w.
func (ex *Exporter) Export(w io.Writer, format Format, img rom.Image) (err error) {
	data, err := ex.Render(format, img)
	if err != nil {
		return
	}

	_, err = w.Write(data)
	return
}

func (ex *Exporter) name() string {
	if len(ex.CircuitName) == 0 {
		return gcg.CIRCUIT_NAME
	}
	return ex.CircuitName
}

// synthesize builds, optionally verifies, and emits the circuit for img.
func (ex *Exporter) synthesize(img rom.Image) (circuit *gcg.Circuit, err error) {
	b := &rom.Builder{Selects: ex.Selects, Verbose: ex.Verbose}
	net, err := b.Build(img)
	if err != nil {
		return
	}

	if ex.Verify {
		err = net.Verify(img)
		if err != nil {
			return
		}
		if ex.Verbose {
			log.Printf("export: %d rows verified", len(img))
		}
	}

	circuit = gcg.Emit(net, ex.name())
	return
}

// template reads the gcg template.
func (ex *Exporter) template() (data []byte, err error) {
	if ex.TemplateFS == nil {
		err = &gcg.ErrTemplate{Err: fs.ErrNotExist}
		return
	}

	name := ex.Template
	if len(name) == 0 {
		name = DEFAULT_TEMPLATE
	}

	data, err = fs.ReadFile(ex.TemplateFS, name)
	if err != nil {
		err = &gcg.ErrTemplate{Err: err}
	}
	return
}
