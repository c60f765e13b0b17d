package rom

// evaluator computes gate outputs for one address.
type evaluator struct {
	nodes   map[int]Node
	drivers map[Pin]int // destination pin to source node
	lines   map[int]int // select terminal to select line
	selects int
	address int
	values  map[int]bool
	visit   map[int]bool
}

func (net *Network) evaluator() *evaluator {
	ev := &evaluator{
		nodes:   make(map[int]Node, len(net.Nodes)),
		drivers: make(map[Pin]int, len(net.Edges)),
		lines:   make(map[int]int, len(net.Selects)),
		selects: len(net.Selects),
	}
	for _, node := range net.Nodes {
		ev.nodes[node.ID] = node
	}
	for _, edge := range net.Edges {
		ev.drivers[edge.To] = edge.From.ID
	}
	for line, id := range net.Selects {
		ev.lines[id] = line
	}
	return ev
}

// input returns the value driving a port; undriven ports read as 0.
func (ev *evaluator) input(id, port int) bool {
	src, ok := ev.drivers[Pin{ID: id, Port: port}]
	if !ok {
		return false
	}
	return ev.value(src)
}

func (ev *evaluator) value(id int) (on bool) {
	if on, ok := ev.values[id]; ok {
		return on
	}
	// Feedback loops cannot come from the Builder; treat them as 0.
	if ev.visit[id] {
		return false
	}
	ev.visit[id] = true
	defer func() {
		ev.values[id] = on
	}()

	node := ev.nodes[id]
	switch node.Kind {
	case KIND_INPUT:
		line, ok := ev.lines[id]
		on = ok && addressBit(ev.address, line, ev.selects)
	case KIND_OUTPUT:
		on = ev.input(id, 0)
	case KIND_NOT:
		on = !ev.input(id, 0)
	case KIND_AND:
		on = node.Inputs > 0
		for port := range node.Inputs {
			if !ev.input(id, port) {
				on = false
				break
			}
		}
	case KIND_OR:
		for port := range node.Inputs {
			if ev.input(id, port) {
				on = true
				break
			}
		}
	}

	return
}

func (ev *evaluator) evaluate(outputs []int, address int) Word {
	ev.address = address
	ev.values = make(map[int]bool, len(ev.nodes))
	ev.visit = make(map[int]bool, len(ev.nodes))

	bits := make([]bool, len(outputs))
	for bit, id := range outputs {
		bits[bit] = ev.value(id)
	}
	return wordOf(bits)
}

// Evaluate returns the word on the output terminals when the select lines
// carry address.
func (net *Network) Evaluate(address int) Word {
	return net.evaluator().evaluate(net.Outputs, address)
}

// Verify evaluates every address reachable by both the select lines and the
// image, and checks it against the image. Rows beyond the select range alias
// onto lower addresses, so the expected word is the OR of every row sharing
// an address. A malformed image is rejected before any address is read.
func (net *Network) Verify(img Image) (err error) {
	err = img.Validate()
	if err != nil {
		return
	}

	selects := len(net.Selects)
	span := len(img)
	if selects < 31 && span > 1<<selects {
		span = 1 << selects
	}

	ev := net.evaluator()
	for address := range span {
		want := aliased(img, address, selects)
		got := ev.evaluate(net.Outputs, address)
		if got != want {
			err = &ErrMismatch{Address: address, Got: got, Want: want}
			return
		}
	}

	return
}

// aliased returns the OR of every row whose low select bits equal address.
func aliased(img Image, address, selects int) Word {
	bits := make([]bool, img.Width())
	for row, word := range img {
		if !sameAddress(row, address, selects) {
			continue
		}
		for bit := range bits {
			bits[bit] = bits[bit] || word.Bit(bit)
		}
	}
	return wordOf(bits)
}

func sameAddress(a, b, selects int) bool {
	for line := range selects {
		if addressBit(a, line, selects) != addressBit(b, line, selects) {
			return false
		}
	}
	return true
}
