package rom

// Kind is the logical kind of a gate node. The string form is the gate type
// name used by the host simulator.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_INPUT  = Kind(0) // UserInput
	KIND_OUTPUT = Kind(1) // UserOutput
	KIND_NOT    = Kind(2) // Not
	KIND_AND    = Kind(3) // And
	KIND_OR     = Kind(4) // Or
)

// HasFanIn returns true if gates of this kind carry an input count.
func (k Kind) HasFanIn() bool {
	return k == KIND_AND || k == KIND_OR
}

// ParseKind returns the kind named by a host gate type.
func ParseKind(name string) (kind Kind, ok bool) {
	for kind = KIND_INPUT; kind <= KIND_OR; kind++ {
		if kind.String() == name {
			ok = true
			return
		}
	}

	return
}
