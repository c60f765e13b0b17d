package rom

import (
	"bufio"
	"io"
	"strings"
)

// Word is a fixed-width bit string, most significant bit first.
type Word string

// Len returns the width of the word in bits.
func (w Word) Len() int {
	return len(w)
}

// Bit returns true if position n (zero is the most significant) is set.
func (w Word) Bit(n int) bool {
	return w[n] == '1'
}

// wordOf builds a word from bit values, most significant first.
func wordOf(bits []bool) Word {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, bit := range bits {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return Word(sb.String())
}

// Image is the ordered table of words stored in the ROM. The row index is
// the address that selects the word.
type Image []Word

// Width returns the common width of the words, or zero for an empty image.
func (img Image) Width() int {
	if len(img) == 0 {
		return 0
	}
	return img[0].Len()
}

// Validate checks that every word has the same width and holds only bits.
func (img Image) Validate() error {
	width := img.Width()
	for row, word := range img {
		if word.Len() != width {
			return &ErrWordWidth{Row: row, Width: word.Len(), Expected: width}
		}
		for col, ch := range string(word) {
			if ch != '0' && ch != '1' {
				return &ErrWordDigit{Row: row, Column: col, Char: ch}
			}
		}
	}

	return nil
}

// WriteTo writes one word per line, without a trailing newline.
func (img Image) WriteTo(w io.Writer) (n int64, err error) {
	for row, word := range img {
		var wrote int
		if row > 0 {
			wrote, err = io.WriteString(w, "\n")
			n += int64(wrote)
			if err != nil {
				return
			}
		}
		wrote, err = io.WriteString(w, string(word))
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	return
}

// ReadImage reads a plain-text dump, one word per line. Blank lines are
// ignored; the result is validated.
func ReadImage(r io.Reader) (img Image, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		img = append(img, Word(line))
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	err = img.Validate()
	if err != nil {
		img = nil
	}

	return
}
