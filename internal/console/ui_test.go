package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:        "$0.00",
		5:        "$5.00",
		12.6:     "$12.60",
		1234.5:   "$1,234.50",
		1234567:  "$1,234,567.00",
		1.576:    "$1.58",
		-42.1:    "-$42.10",
		999.999:  "$1,000.00",
		0.004999: "$0.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatCurrency(in))
	}
}

func TestPrompterNumberReprompts(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("abc\n-2\n7\n"), &out)
	assert.Equal(t, 7, p.number("qty: "))
	assert.Contains(t, out.String(), "valid number")
}

func TestPrompterTextSkipsEmpty(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("\n\npanda\n"), &out)
	assert.Equal(t, "panda", p.text("name: "))
}

func TestPrompterEOFReturnsZero(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader(""), &out)
	assert.Equal(t, 0, p.number("qty: "))
	assert.Equal(t, "", p.text("name: "))
	assert.False(t, p.confirm("sure?"))
}
