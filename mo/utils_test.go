package mo

import (
	"encoding/binary"
	"reflect"
	"sort"
	"testing"
)

func assert_equal(t *testing.T, expected, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Logf("%#v != %#v", expected, got)
		t.Fail()
	}
}

// mofile is a minimal MO reader used to check the layout of Build's output
// independently of any third party decoder.
type mofile struct {
	data       []byte
	hdr        header
	numStrings int
	origTab    []byte
	transTab   []byte
}

func parseMO(t *testing.T, data []byte) *mofile {
	t.Helper()
	var hdr header
	headerSize := binary.Size(&hdr)
	if len(data) < headerSize {
		t.Fatalf("message catalogue is too short")
	}
	order := binary.LittleEndian
	hdr = header{
		Magic:          order.Uint32(data[0:]),
		Version:        order.Uint32(data[4:]),
		NumStrings:     order.Uint32(data[8:]),
		OrigTabOffset:  order.Uint32(data[12:]),
		TransTabOffset: order.Uint32(data[16:]),
		HashTabSize:    order.Uint32(data[20:]),
		HashTabOffset:  order.Uint32(data[24:]),
	}
	if hdr.Magic != le_magic {
		t.Fatalf("wrong magic: %x", hdr.Magic)
	}
	n := hdr.NumStrings
	if int(hdr.OrigTabOffset+8*n) > len(data) || int(hdr.TransTabOffset+8*n) > len(data) {
		t.Fatalf("string tables out of bounds")
	}
	m := &mofile{
		data:       data,
		hdr:        hdr,
		numStrings: int(n),
		origTab:    data[hdr.OrigTabOffset : hdr.OrigTabOffset+8*n],
		transTab:   data[hdr.TransTabOffset : hdr.TransTabOffset+8*n],
	}
	for i := 0; i < m.numStrings; i++ {
		for _, tab := range [][]byte{m.origTab, m.transTab} {
			strLen := order.Uint32(tab[8*i:])
			strOffset := order.Uint32(tab[8*i+4:])
			if int(strLen+strOffset) >= len(data) {
				t.Fatalf("string %d data (len=%x, offset=%x) is out of bounds", i, strLen, strOffset)
			}
			if data[strOffset+strLen] != 0 {
				t.Fatalf("string %d is not NUL terminated", i)
			}
		}
	}
	return m
}

func (m *mofile) str(table []byte, idx int) string {
	strLen := binary.LittleEndian.Uint32(table[8*idx:])
	strOffset := binary.LittleEndian.Uint32(table[8*idx+4:])
	return string(m.data[strOffset : strOffset+strLen])
}

func (m *mofile) msgID(idx int) string {
	return m.str(m.origTab, idx)
}

func (m *mofile) msgStr(idx int) string {
	return m.str(m.transTab, idx)
}

func (m *mofile) keys() []string {
	keys := make([]string, m.numStrings)
	for i := range keys {
		keys[i] = m.msgID(i)
	}
	return keys
}

// lookup performs a binary search over the original strings table.
func (m *mofile) lookup(msgid string) (string, bool) {
	idx := sort.Search(m.numStrings, func(i int) bool {
		return m.msgID(i) >= msgid
	})
	if idx < m.numStrings && m.msgID(idx) == msgid {
		return m.msgStr(idx), true
	}
	return "", false
}
