package rom

// Point is a placement coordinate.
type Point struct {
	X     int
	Y     int
	Angle int
}

// Node is a single gate. Nodes are immutable once allocated.
type Node struct {
	ID     int    // Unique identity, in allocation order.
	Kind   Kind   // Logical kind.
	Name   string // Display label.
	Inputs int    // Fan-in for AND and OR gates.
	Point  Point  // Placement.
}

// Pin is a port on a node.
type Pin struct {
	ID   int
	Port int
}

// Edge is a wire from a source pin to a destination pin.
type Edge struct {
	From Pin
	To   Pin
}

// Network is a synthesized gate graph. Nodes and Edges are kept in the
// order they were created.
type Network struct {
	Nodes   []Node
	Edges   []Edge
	Selects []int // Select terminal identities, by select line.
	Outputs []int // Output terminal identities, by output bit.
}

// Allocator hands out node identities, starting at 1.
type Allocator struct {
	next int
}

// NewAllocator returns an allocator whose first identity is 1.
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Next returns a fresh identity.
func (alloc *Allocator) Next() (id int) {
	if alloc.next == 0 {
		alloc.next = 1
	}
	id = alloc.next
	alloc.next++
	return
}

// Peek returns the identity the next call to Next will return.
func (alloc *Allocator) Peek() int {
	return max(alloc.next, 1)
}

// add allocates a node and appends it to the network.
func (net *Network) add(alloc *Allocator, kind Kind, name string, inputs int, pt Point) int {
	node := Node{
		ID:     alloc.Next(),
		Kind:   kind,
		Name:   name,
		Inputs: inputs,
		Point:  pt,
	}
	net.Nodes = append(net.Nodes, node)
	return node.ID
}

// connect wires port fromPort of node from into port toPort of node to.
func (net *Network) connect(from, fromPort, to, toPort int) {
	net.Edges = append(net.Edges, Edge{
		From: Pin{ID: from, Port: fromPort},
		To:   Pin{ID: to, Port: toPort},
	})
}

// Node returns the node with the given identity.
func (net *Network) Node(id int) (node Node, ok bool) {
	for _, node = range net.Nodes {
		if node.ID == id {
			ok = true
			return
		}
	}

	node = Node{}
	return
}

// Count returns the number of nodes of a kind.
func (net *Network) Count(kind Kind) (count int) {
	for _, node := range net.Nodes {
		if node.Kind == kind {
			count++
		}
	}
	return
}
