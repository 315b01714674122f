package audio

import (
	"math"
	"testing"
)

func TestFireGeneratorStream(t *testing.T) {
	gen := NewFireGenerator(sampleRate)
	buf := make([][2]float64, sampleRate.N(fireDuration))

	n, ok := gen.Stream(buf)
	if !ok {
		t.Fatal("Stream() returned not ok")
	}
	if n != len(buf) {
		t.Fatalf("Stream() filled %d samples, want %d", n, len(buf))
	}

	peak := 0.0
	for i, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("sample %d: channels differ: %v vs %v", i, s[0], s[1])
		}
		if math.Abs(s[0]) > 1 {
			t.Fatalf("sample %d out of range: %v", i, s[0])
		}
		if math.Abs(s[0]) > peak {
			peak = math.Abs(s[0])
		}
	}
	if peak == 0 {
		t.Fatal("generator produced silence")
	}
}

func TestFireGeneratorDecays(t *testing.T) {
	gen := NewFireGenerator(sampleRate)
	buf := make([][2]float64, sampleRate.N(fireDuration))
	gen.Stream(buf)

	// Peak amplitude of the last tenth should be well below the first tenth.
	tenth := len(buf) / 10
	head, tail := 0.0, 0.0
	for _, s := range buf[:tenth] {
		if math.Abs(s[0]) > head {
			head = math.Abs(s[0])
		}
	}
	for _, s := range buf[len(buf)-tenth:] {
		if math.Abs(s[0]) > tail {
			tail = math.Abs(s[0])
		}
	}

	if tail >= head/2 {
		t.Errorf("envelope did not decay: head peak %v, tail peak %v", head, tail)
	}
}

func TestFireGeneratorErr(t *testing.T) {
	gen := NewFireGenerator(sampleRate)
	if err := gen.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestPlayerBeforeInit(t *testing.T) {
	p := NewPlayer()

	// Must not panic or touch the speaker before Init.
	p.PlayFire()
	p.Close()
}
