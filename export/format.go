package export

import (
	"strings"
)

// Format is an export file format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_BIN = Format(0) // bin
	FORMAT_XML = Format(1) // xml
	FORMAT_IC  = Format(2) // ic
	FORMAT_GCG = Format(3) // gcg
)

// ParseFormat returns the format for a name or file extension.
func ParseFormat(name string) (format Format, err error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	for format = FORMAT_BIN; format <= FORMAT_GCG; format++ {
		if format.String() == name {
			return
		}
	}

	err = ErrFormatInvalid
	return
}
