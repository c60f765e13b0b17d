// Copyright 2025, Malachi Burnett

package rom

import (
	"fmt"
	"log"
)

const (
	DEFAULT_SELECTS = 8  // Select lines, independent of the image length.
	DEFAULT_BITS    = 16 // Output bits for an empty image.
)

// Builder synthesizes the decoder network for a memory image.
type Builder struct {
	Selects int    // Number of select lines. Zero means DEFAULT_SELECTS.
	Layout  Layout // Node placement. Nil means GridLayout.
	Verbose bool   // If set, logs the size of each synthesized network.
}

// Build validates the image and synthesizes its network with a fresh
// allocator.
func (b *Builder) Build(img Image) (net *Network, err error) {
	return b.BuildWith(NewAllocator(), img)
}

// BuildWith validates the image and synthesizes its network, drawing node
// identities from alloc. Nothing is allocated if the image is rejected.
//
// Allocation order is fixed: the output terminals, then each select line
// followed by its complement, then for every output bit its OR gate
// followed by one AND gate per row holding a 1 in that bit.
func (b *Builder) BuildWith(alloc *Allocator, img Image) (net *Network, err error) {
	selects := b.Selects
	if selects == 0 {
		selects = DEFAULT_SELECTS
	}
	if selects < 0 {
		err = ErrSelectLines
		return
	}

	err = img.Validate()
	if err != nil {
		return
	}

	bits := img.Width()
	if len(img) == 0 {
		bits = DEFAULT_BITS
	}

	layout := b.Layout
	if layout == nil {
		layout = GridLayout{}
	}

	net = &Network{
		Selects: make([]int, selects),
		Outputs: make([]int, bits),
	}

	for bit := range bits {
		net.Outputs[bit] = net.add(alloc, KIND_OUTPUT, fmt.Sprintf("UserOutput%d", bit), 0, layout.Output(bit))
	}

	nots := make([]int, selects)
	for line := range selects {
		net.Selects[line] = net.add(alloc, KIND_INPUT, fmt.Sprintf("Select%d", line), 0, layout.Select(line))
		nots[line] = net.add(alloc, KIND_NOT, fmt.Sprintf("Not_Select%d", line), 0, layout.Not(line))
		net.connect(net.Selects[line], 0, nots[line], 0)
	}

	for bit := range bits {
		or := net.add(alloc, KIND_OR, fmt.Sprintf("Or_out%d", bit), len(img), layout.Or(bit))

		for row, word := range img {
			if !word.Bit(bit) {
				continue
			}

			and := net.add(alloc, KIND_AND, fmt.Sprintf("And_%d_out%d", row, bit), selects, layout.And(row, bit))
			for line := range selects {
				if addressBit(row, line, selects) {
					net.connect(net.Selects[line], 0, and, line)
				} else {
					net.connect(nots[line], 0, and, line)
				}
			}
			net.connect(and, 0, or, row)
		}

		net.connect(or, 0, net.Outputs[bit], 0)
	}

	if b.Verbose {
		log.Printf("rom: %d rows x %d bits, %d selects: %d gates, %d wires",
			len(img), bits, selects, len(net.Nodes), len(net.Edges))
	}

	return
}

// addressBit returns select line `line` of `selects` for an address, most
// significant line first. Addresses wider than the select lines alias.
func addressBit(address, line, selects int) bool {
	return (address>>(selects-line-1))&1 == 1
}
