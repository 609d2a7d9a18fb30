package wire

import (
	"bytes"
	"testing"
)

func TestWriteReadFrameRoundTrip(t *testing.T) {
	body := EncodeMessage(OutReqCurrentTime)
	var buf bytes.Buffer
	if err := WriteFrame(&buf, body); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	fields, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d: %q", len(fields), fields)
	}
	if string(fields[0]) != "49" {
		t.Fatalf("expected code 49, got %q", fields[0])
	}
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	var lenBuf [4]byte
	lenBuf[0] = 0xFF // length >> MaxPayloadBytes
	buf := bytes.NewBuffer(lenBuf[:])
	if _, err := ReadFrame(buf); err == nil {
		t.Fatal("expected error for oversized length prefix")
	}
}

func TestReadFrameShortBodyErrors(t *testing.T) {
	var lenBuf [4]byte
	lenBuf[3] = 10 // claims 10 bytes, provides none
	buf := bytes.NewBuffer(lenBuf[:])
	if _, err := ReadFrame(buf); err == nil {
		t.Fatal("expected error for truncated frame body")
	}
}

func TestEncoderMultiField(t *testing.T) {
	body := EncodeMessage(OutReqMktData, Int(9000), Enum("AAPL"), Bool(true))
	fields := bytes.Split(body, []byte{0})
	// trailing NUL produces one trailing empty field
	want := [][]byte{[]byte("1"), []byte("9000"), []byte("AAPL"), []byte("1"), {}}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d: %q", len(fields), len(want), fields)
	}
	for i := range want {
		if !bytes.Equal(fields[i], want[i]) {
			t.Fatalf("field %d: got %q, want %q", i, fields[i], want[i])
		}
	}
}
