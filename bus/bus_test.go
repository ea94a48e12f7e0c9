package bus

import "testing"

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM()
	r.Write(0x1234, 0x42)
	if got := r.Read(0x1234); got != 0x42 {
		t.Errorf("Read(0x1234) = 0x%.2X, want 0x42", got)
	}
}

func TestRAMLoad(t *testing.T) {
	r := NewRAM()
	r.Load(0x0600, []uint8{0xA9, 0x0F, 0x85, 0x00})
	want := []uint8{0xA9, 0x0F, 0x85, 0x00}
	for i, w := range want {
		if got := r.Read(0x0600 + uint16(i)); got != w {
			t.Errorf("Read(0x%.4X) = 0x%.2X, want 0x%.2X", 0x0600+i, got, w)
		}
	}
}

type fakeDevice struct {
	owns func(uint16) bool
	val  uint8
}

func (f *fakeDevice) Owns(addr uint16) bool { return f.owns(addr) }
func (f *fakeDevice) Read(addr uint16) uint8 {
	return f.val
}
func (f *fakeDevice) Write(addr uint16, val uint8) {
	f.val = val
}

func TestMappedRoutesToDevice(t *testing.T) {
	dev := &fakeDevice{owns: func(a uint16) bool { return a == 0xD010 }, val: 0x00}
	m := NewMapped(dev)

	m.Write(0xD010, 0x55)
	if dev.val != 0x55 {
		t.Errorf("device not written: val = 0x%.2X", dev.val)
	}
	if got := m.Read(0xD010); got != 0x55 {
		t.Errorf("Read(0xD010) = 0x%.2X, want 0x55", got)
	}

	m.Write(0x0000, 0x77)
	if got := m.Read(0x0000); got != 0x77 {
		t.Errorf("RAM fallthrough: Read(0x0000) = 0x%.2X, want 0x77", got)
	}
	if dev.val != 0x55 {
		t.Errorf("device should be untouched by unrelated address, val = 0x%.2X", dev.val)
	}
}
