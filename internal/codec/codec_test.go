package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte(`{"hostname":"example.com","display_name":"Example"}`),
		[]byte("{}"),
		[]byte(strings.Repeat("x", 4096)),
	}

	for _, payload := range payloads {
		code, err := Encode(Version, payload)
		if err != nil {
			t.Fatalf("Encode error: %v", err)
		}

		version, got, err := Decode(code)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if version != Version {
			t.Fatalf("version = %d, want %d", version, Version)
		}
		if string(got) != string(payload) {
			t.Fatalf("payload mismatch after round trip")
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	payload := []byte(`{"hostname":"example.com"}`)

	a, err := Encode(Version, payload)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	b, err := Encode(Version, payload)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if a != b {
		t.Fatalf("Encode is not deterministic for identical input")
	}
}

func TestDecode_InvalidFormat(t *testing.T) {
	notJSON := base64.RawURLEncoding.EncodeToString([]byte("not json at all"))
	emptyEnvelope := base64.RawURLEncoding.EncodeToString([]byte("{}"))
	badInnerPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"v":1,"p":"%%%","c":"abc"}`))

	for _, code := range []string{"", "!!!not base64!!!", notJSON, emptyEnvelope, badInnerPayload} {
		if _, _, err := Decode(code); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Decode(%.20q) error = %v, want ErrInvalidFormat", code, err)
		}
	}
}

func TestDecode_UnsupportedVersion(t *testing.T) {
	payload := []byte(`{"hostname":"example.com"}`)

	// Hand-build an envelope with a version one past the newest known one,
	// carrying a checksum that would verify. It must still be rejected
	// before any payload inspection.
	env := envelope{
		V: Version + 1,
		P: base64.RawURLEncoding.EncodeToString(payload),
		C: Checksum(Version+1, payload),
	}
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	code := base64.RawURLEncoding.EncodeToString(raw)

	if _, _, err := Decode(code); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("Decode error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestDecode_TamperedCode(t *testing.T) {
	code, err := Encode(Version, []byte(`{"hostname":"example.com","display_name":"Example"}`))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	// Flip every character in turn; each mutation must fail with a format
	// or checksum error, never decode into a different payload.
	for i := 0; i < len(code); i++ {
		mutated := []byte(code)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		_, _, err := Decode(string(mutated))
		if err == nil {
			t.Fatalf("Decode succeeded on code mutated at index %d", i)
		}
		if !errors.Is(err, ErrChecksumMismatch) && !errors.Is(err, ErrInvalidFormat) && !errors.Is(err, ErrUnsupportedVersion) {
			t.Fatalf("Decode error = %v at index %d, want codec sentinel", err, i)
		}
	}
}

func TestDecode_TruncatedCode(t *testing.T) {
	code, err := Encode(Version, []byte(`{"hostname":"example.com"}`))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	if _, _, err := Decode(code[:len(code)/2]); err == nil {
		t.Fatalf("Decode succeeded on truncated code")
	}
}
