package gcg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"

	"github.com/MalachiBurnett/Logic-Gate-CPU/rom"
)

func build(t *testing.T, selects int, img rom.Image) *rom.Network {
	t.Helper()

	b := &rom.Builder{Selects: selects}
	net, err := b.Build(img)
	if err != nil {
		t.Fatal(err)
	}
	return net
}

func TestDocument_Marshal(t *testing.T) {
	assert := assert.New(t)

	net := build(t, 1, rom.Image{"1"})
	data, err := Document(Emit(net, CIRCUIT_NAME)).Marshal()
	assert.NoError(err)

	expected := strings.Join([]string{
		`<?xml version="1.0" encoding="utf-8"?>`,
		`<CircuitGroup Version="1.2">`,
		`  <Circuit Name="InstructionMemory">`,
		`    <Gates>`,
		`      <Gate Type="UserOutput" Name="UserOutput0" ID="1">`,
		`        <Point X="832" Y="90" Angle="0"></Point>`,
		`      </Gate>`,
		`      <Gate Type="UserInput" Name="Select0" ID="2">`,
		`        <Point X="100" Y="100" Angle="0"></Point>`,
		`      </Gate>`,
		`      <Gate Type="Not" Name="Not_Select0" ID="3">`,
		`        <Point X="550" Y="100" Angle="0"></Point>`,
		`      </Gate>`,
		`      <Gate Type="Or" Name="Or_out0" ID="4" NumInputs="1">`,
		`        <Point X="700" Y="100" Angle="0"></Point>`,
		`      </Gate>`,
		`      <Gate Type="And" Name="And_0_out0" ID="5" NumInputs="1">`,
		`        <Point X="500" Y="100" Angle="0"></Point>`,
		`      </Gate>`,
		`    </Gates>`,
		`    <Wires>`,
		`      <Wire>`,
		`        <From ID="2" Port="0"></From>`,
		`        <To ID="3" Port="0"></To>`,
		`      </Wire>`,
		`      <Wire>`,
		`        <From ID="3" Port="0"></From>`,
		`        <To ID="5" Port="0"></To>`,
		`      </Wire>`,
		`      <Wire>`,
		`        <From ID="5" Port="0"></From>`,
		`        <To ID="4" Port="0"></To>`,
		`      </Wire>`,
		`      <Wire>`,
		`        <From ID="4" Port="0"></From>`,
		`        <To ID="1" Port="0"></To>`,
		`      </Wire>`,
		`    </Wires>`,
		`  </Circuit>`,
		`</CircuitGroup>`,
		``,
	}, "\n")

	assert.Equal(expected, string(data))
}

func TestEmit_Order(t *testing.T) {
	assert := assert.New(t)

	net := build(t, 3, rom.Image{"101", "011", "110"})
	c := Emit(net, "Rom")
	assert.Equal("Rom", c.Name)
	assert.Equal(len(net.Nodes), len(c.Gates.Gate))
	assert.Equal(len(net.Edges), len(c.Wires.Wire))

	for n, gate := range c.Gates.Gate {
		node := net.Nodes[n]
		assert.Equal(node.ID, gate.ID)
		assert.Equal(node.Name, gate.Name)
		assert.Equal(node.Kind.String(), gate.Type)
		if node.Kind.HasFanIn() {
			if assert.NotNil(gate.NumInputs) {
				assert.Equal(node.Inputs, *gate.NumInputs)
			}
		} else {
			assert.Nil(gate.NumInputs)
		}
	}

	for n, wire := range c.Wires.Wire {
		edge := net.Edges[n]
		assert.Equal(edge.From.ID, wire.From.ID)
		assert.Equal(edge.To.Port, wire.To.Port)
	}
}

func TestEmit_EmptyImage(t *testing.T) {
	assert := assert.New(t)

	net := build(t, 0, rom.Image{})
	data, err := Document(Emit(net, CIRCUIT_NAME)).Marshal()
	assert.NoError(err)
	assert.Equal(rom.DEFAULT_BITS, strings.Count(string(data), `Type="Or"`))
	assert.Equal(rom.DEFAULT_BITS, strings.Count(string(data), `NumInputs="0"`))
	assert.Equal(0, strings.Count(string(data), `Type="And"`))
}

func TestEmit_Deterministic(t *testing.T) {
	assert := assert.New(t)

	img := rom.Image{"1010101010101010", "0101010101010101", "1111000011110000"}
	first, err := Document(Emit(build(t, 0, img), CIRCUIT_NAME)).Marshal()
	assert.NoError(err)
	second, err := Document(Emit(build(t, 0, img), CIRCUIT_NAME)).Marshal()
	assert.NoError(err)

	assert.True(bytes.Equal(first, second))
}

func TestDecode_Network(t *testing.T) {
	assert := assert.New(t)

	img := rom.Image{"0110", "1001", "1111", "0000"}
	net := build(t, 0, img)
	data, err := Document(Emit(net, CIRCUIT_NAME)).Marshal()
	assert.NoError(err)

	grp, err := Decode(bytes.NewReader(data))
	assert.NoError(err)
	assert.Equal(VERSION, grp.Version)
	assert.Nil(grp.Circuit("Other"))

	c := grp.Circuit(CIRCUIT_NAME)
	if !assert.NotNil(c) {
		return
	}

	back, err := c.Network()
	assert.NoError(err)
	if diff := deep.Equal(net, back); diff != nil {
		t.Fatalf("decoded network differs: %v\n%s", diff, spew.Sdump(back))
	}
	assert.NoError(back.Verify(img))
}

func TestDecode_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode(strings.NewReader("<CircuitGroup><Circuit>"))
	var doc *ErrDocument
	assert.True(errors.As(err, &doc))

	c := &Circuit{Gates: Gates{Gate: []Gate{{Type: "Xor", ID: 7}}}}
	_, err = c.Network()
	var gateType *ErrGateType
	if assert.True(errors.As(err, &gateType)) {
		assert.Equal(7, gateType.ID)
	}

	c = &Circuit{
		Gates: Gates{Gate: []Gate{{Type: "Not", ID: 1}}},
		Wires: Wires{Wire: []Wire{{From: Endpoint{ID: 1}, To: Endpoint{ID: 2}}}},
	}
	_, err = c.Network()
	var dangling *ErrDangling
	if assert.True(errors.As(err, &dangling)) {
		assert.Equal(0, dangling.Wire)
		assert.Equal(2, dangling.ID)
	}

	c = &Circuit{
		Gates: Gates{Gate: []Gate{
			{Type: "UserInput", Name: "a", ID: 1},
			{Type: "Not", Name: "b", ID: 1},
		}},
	}
	back, err := c.Network()
	assert.Nil(back)
	var duplicate *ErrDuplicate
	if assert.True(errors.As(err, &duplicate)) {
		assert.Equal(1, duplicate.ID)
	}
}
