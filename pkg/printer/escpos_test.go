package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStartsWithInit(t *testing.T) {
	doc := NewDocument(Width58mm)
	assert.True(t, bytes.HasPrefix(doc.Bytes(), []byte{0x1B, '@'}))
}

func TestDocumentRowAlignment(t *testing.T) {
	doc := NewDocument(Width58mm)
	doc.Row("TOTAL", "Rp16.650")

	line := doc.Bytes()[2:] // skip init sequence
	assert.Len(t, bytes.TrimSuffix(line, []byte{0x0A}), Width58mm)
	assert.True(t, bytes.HasPrefix(line, []byte("TOTAL")))
	assert.True(t, bytes.Contains(line, []byte("Rp16.650\n")))
}

func TestDocumentRowOverflowKeepsSingleSpace(t *testing.T) {
	doc := NewDocument(10)
	doc.Row("VERYLONGLABEL", "VALUE")
	assert.Contains(t, string(doc.Bytes()), "VERYLONGLABEL VALUE")
}

func TestDocumentItemRow(t *testing.T) {
	doc := NewDocument(Width58mm)
	doc.ItemRow(2, "Kopi Sachet", "Rp3.000")
	assert.Contains(t, string(doc.Bytes()), "2x Kopi Sachet")
	assert.Contains(t, string(doc.Bytes()), "Rp3.000")
}

func TestDocumentSeparator(t *testing.T) {
	doc := NewDocument(8)
	doc.Separator('-')
	assert.Contains(t, string(doc.Bytes()), "--------\n")
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	assert.NoError(t, err)
	assert.NoError(t, p.Print([]byte("x")))
	assert.False(t, p.IsConnected())

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("laser", "", "")
	assert.Error(t, err)
}
