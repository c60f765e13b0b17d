package rom

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func randomImage(rnd *rand.Rand, rows, width int) Image {
	img := make(Image, rows)
	for row := range img {
		bits := make([]bool, width)
		for n := range bits {
			bits[n] = rnd.Intn(2) == 1
		}
		img[row] = wordOf(bits)
	}
	return img
}

func TestNetwork_Evaluate(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for _, rows := range []int{1, 7, 64, 256} {
		t.Run(fmt.Sprintf("rows=%d", rows), func(t *testing.T) {
			assert := assert.New(t)

			img := randomImage(rnd, rows, 16)
			b := &Builder{}
			net, err := b.Build(img)
			assert.NoError(err)

			for row, word := range img {
				assert.Equal(word, net.Evaluate(row), "row %d", row)
			}
			assert.NoError(net.Verify(img))
		})
	}
}

func TestNetwork_EvaluateUnused(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{Selects: 3}
	net, err := b.Build(Image{"11", "11"})
	assert.NoError(err)

	// Addresses without a row read as zero.
	for address := 2; address < 8; address++ {
		assert.Equal(Word("00"), net.Evaluate(address))
	}
}

func TestNetwork_Alias(t *testing.T) {
	assert := assert.New(t)

	// Five rows on two select lines: row 4 aliases onto address 0.
	img := Image{"100", "000", "000", "000", "001"}
	b := &Builder{Selects: 2}
	net, err := b.Build(img)
	assert.NoError(err)

	assert.Equal(Word("101"), net.Evaluate(0))
	assert.NoError(net.Verify(img))

	or, ok := net.Node(net.Outputs[len(net.Outputs)-1] + 2*2 + 1)
	assert.True(ok)
	assert.Equal(KIND_OR, or.Kind)
	assert.Equal(5, or.Inputs)
}

func TestNetwork_VerifyMismatch(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{Selects: 2}
	net, err := b.Build(Image{"01", "10"})
	assert.NoError(err)

	err = net.Verify(Image{"01", "11"})
	var mismatch *ErrMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch, got %v\n%s", err, spew.Sdump(net))
	}
	assert.Equal(1, mismatch.Address)
	assert.Equal(Word("10"), mismatch.Got)
	assert.Equal(Word("11"), mismatch.Want)

	for _, img := range []Image{{"01", "1"}, {"01", "1x"}} {
		assert.NotPanics(func() { err = net.Verify(img) })
		assert.ErrorIs(err, ErrRejected, "%v", img)
	}
}

func TestNetwork_EvaluateLoop(t *testing.T) {
	assert := assert.New(t)

	net := &Network{
		Nodes: []Node{
			{ID: 1, Kind: KIND_OUTPUT},
			{ID: 2, Kind: KIND_NOT},
			{ID: 3, Kind: KIND_NOT},
		},
		Edges: []Edge{
			{From: Pin{2, 0}, To: Pin{1, 0}},
			{From: Pin{3, 0}, To: Pin{2, 0}},
			{From: Pin{2, 0}, To: Pin{3, 0}},
		},
		Outputs: []int{1},
	}

	assert.NotPanics(func() { net.Evaluate(0) })
}

func FuzzBuilder(f *testing.F) {
	f.Add(uint8(3), uint8(4), int64(0))
	f.Add(uint8(0), uint8(16), int64(1))
	f.Add(uint8(9), uint8(1), int64(2))

	f.Fuzz(func(t *testing.T, rows uint8, width uint8, seed int64) {
		assert := assert.New(t)

		width = width%16 + 1
		rnd := rand.New(rand.NewSource(seed))
		img := randomImage(rnd, int(rows), int(width))

		b := &Builder{}
		net, err := b.Build(img)
		assert.NoError(err)
		assert.NoError(net.Verify(img))

		for n, node := range net.Nodes {
			assert.Equal(n+1, node.ID)
		}
	})
}
