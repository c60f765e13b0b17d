package gcg

import (
	"github.com/MalachiBurnett/Logic-Gate-CPU/rom"
)

// Emit converts a network into a circuit element. Gates and wires keep the
// network's creation order.
func Emit(net *rom.Network, name string) *Circuit {
	c := &Circuit{
		Name: name,
		Gates: Gates{
			Gate: make([]Gate, 0, len(net.Nodes)),
		},
		Wires: Wires{
			Wire: make([]Wire, 0, len(net.Edges)),
		},
	}

	for _, node := range net.Nodes {
		gate := Gate{
			Type: node.Kind.String(),
			Name: node.Name,
			ID:   node.ID,
			Point: Point{
				X:     node.Point.X,
				Y:     node.Point.Y,
				Angle: node.Point.Angle,
			},
		}
		if node.Kind.HasFanIn() {
			inputs := node.Inputs
			gate.NumInputs = &inputs
		}
		c.Gates.Gate = append(c.Gates.Gate, gate)
	}

	for _, edge := range net.Edges {
		c.Wires.Wire = append(c.Wires.Wire, Wire{
			From: Endpoint{ID: edge.From.ID, Port: edge.From.Port},
			To:   Endpoint{ID: edge.To.ID, Port: edge.To.Port},
		})
	}

	return c
}

// Network rebuilds the gate graph of a circuit. Input terminals become the
// select lines and output terminals the output bits, in document order.
func (c *Circuit) Network() (net *rom.Network, err error) {
	net = &rom.Network{}
	ids := make(map[int]bool, len(c.Gates.Gate))

	for _, gate := range c.Gates.Gate {
		if ids[gate.ID] {
			net = nil
			err = &ErrDuplicate{ID: gate.ID}
			return
		}

		kind, ok := rom.ParseKind(gate.Type)
		if !ok {
			net = nil
			err = &ErrGateType{ID: gate.ID, Type: gate.Type}
			return
		}

		node := rom.Node{
			ID:   gate.ID,
			Kind: kind,
			Name: gate.Name,
			Point: rom.Point{
				X:     gate.Point.X,
				Y:     gate.Point.Y,
				Angle: gate.Point.Angle,
			},
		}
		if gate.NumInputs != nil {
			node.Inputs = *gate.NumInputs
		}

		switch kind {
		case rom.KIND_INPUT:
			net.Selects = append(net.Selects, gate.ID)
		case rom.KIND_OUTPUT:
			net.Outputs = append(net.Outputs, gate.ID)
		}

		ids[gate.ID] = true
		net.Nodes = append(net.Nodes, node)
	}

	for n, wire := range c.Wires.Wire {
		for _, id := range []int{wire.From.ID, wire.To.ID} {
			if !ids[id] {
				net = nil
				err = &ErrDangling{Wire: n, ID: id}
				return
			}
		}
		net.Edges = append(net.Edges, rom.Edge{
			From: rom.Pin{ID: wire.From.ID, Port: wire.From.Port},
			To:   rom.Pin{ID: wire.To.ID, Port: wire.To.Port},
		})
	}

	return
}
