package bytebuffer

import "testing"

func TestWriteReadRoundTrip(t *testing.T) {
	buf := New()
	buf.WriteUint8(200)
	buf.WriteInt16(-1234)
	buf.WriteUint16(54321)
	buf.WriteInt32(-123456789)
	buf.WriteUint32(3000000000)
	buf.WriteUint64(18000000000000000000)
	buf.WriteInt64(-9000000000000000000)
	buf.WriteBytes([]byte("hello"))

	buf.Seek(0)
	if v, _ := buf.ReadByte(); v != 200 {
		t.Errorf("ReadByte = %d, want 200", v)
	}
	if v := buf.ReadInt16(); v != -1234 {
		t.Errorf("ReadInt16 = %d, want -1234", v)
	}
	if v := buf.ReadUint16(); v != 54321 {
		t.Errorf("ReadUint16 = %d, want 54321", v)
	}
	if v := buf.ReadInt32(); v != -123456789 {
		t.Errorf("ReadInt32 = %d, want -123456789", v)
	}
	if v := buf.ReadUint32(); v != 3000000000 {
		t.Errorf("ReadUint32 = %d, want 3000000000", v)
	}
	if v := buf.ReadUint64(); v != 18000000000000000000 {
		t.Errorf("ReadUint64 = %d, want 18000000000000000000", v)
	}
	if v := buf.ReadInt64(); v != -9000000000000000000 {
		t.Errorf("ReadInt64 = %d, want -9000000000000000000", v)
	}
	if got := string(buf.ReadBytes(5)); got != "hello" {
		t.Errorf("ReadBytes = %q, want hello", got)
	}
}

func TestWriteUint8Rejects(t *testing.T) {
	buf := New()
	if err := buf.WriteUint8(256); err == nil {
		t.Error("WriteUint8(256) should fail")
	}
	if err := buf.WriteUint8(-1); err == nil {
		t.Error("WriteUint8(-1) should fail")
	}
}

func TestSeekOverwrites(t *testing.T) {
	buf := New()
	buf.WriteBytes([]byte("aaaa"))
	buf.Seek(1)
	buf.WriteBytes([]byte("bb"))
	if got := string(buf.Bytes()); got != "abba" {
		t.Errorf("Bytes() = %q, want abba", got)
	}
}
