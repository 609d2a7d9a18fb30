package wire

import "testing"

func TestTokensSequentialDecode(t *testing.T) {
	tok := NewTokens([][]byte{[]byte("1"), []byte("9000"), []byte(""), []byte("12.5"), []byte("1")})

	code, err := tok.Int64("code")
	if err != nil || code != 1 {
		t.Fatalf("code: %v %v", code, err)
	}
	reqID, err := tok.Int64("reqId")
	if err != nil || reqID != 9000 {
		t.Fatalf("reqId: %v %v", reqID, err)
	}
	empty, err := tok.Int64("empty")
	if err != nil || empty != 0 {
		t.Fatalf("empty: %v %v", empty, err)
	}
	price, err := tok.Float64("price")
	if err != nil || price != 12.5 {
		t.Fatalf("price: %v %v", price, err)
	}
	live, err := tok.Bool("canAutoExecute")
	if err != nil || !live {
		t.Fatalf("canAutoExecute: %v %v", live, err)
	}
}

func TestTokensExhaustedReturnsFieldError(t *testing.T) {
	tok := NewTokens([][]byte{[]byte("1")})
	if _, err := tok.Int64("code"); err != nil {
		t.Fatalf("unexpected error on first field: %v", err)
	}
	_, err := tok.Int64("missing")
	if err == nil {
		t.Fatal("expected error past end of fields")
	}
	var fe *FieldError
	if !asFieldError(err, &fe) {
		t.Fatalf("expected *FieldError, got %T: %v", err, err)
	}
	if fe.Field != "missing" {
		t.Fatalf("expected field name 'missing', got %q", fe.Field)
	}
}

func asFieldError(err error, target **FieldError) bool {
	fe, ok := err.(*FieldError)
	if ok {
		*target = fe
	}
	return ok
}
