package bitseq

import (
	"testing"
)

func TestDnaCodec(t *testing.T) {
	var c DnaCodec
	if c.Bits() != 2 {
		t.Errorf("wrong width:\n\texpect: 2\n\tactual: %d", c.Bits())
	}
	if c.ToBits(DnaG) != 2 {
		t.Errorf("wrong bits for G:\n\texpect: 2\n\tactual: %d", c.ToBits(DnaG))
	}
	if c.ToChar(DnaG) != 'G' {
		t.Errorf("wrong char for G:\n\texpect: 'G'\n\tactual: %q", c.ToChar(DnaG))
	}
}

func TestDnaCodec_RoundTrip(t *testing.T) {
	var c DnaCodec
	for _, s := range c.Items() {
		t.Run(s.String(), func(t *testing.T) {
			if got, ok := c.TryFromBits(c.ToBits(s)); !ok || got != s {
				t.Errorf("TryFromBits(ToBits(%v)) = %v, %v", s, got, ok)
			}
			if got := c.UnsafeFromBits(c.ToBits(s)); got != s {
				t.Errorf("UnsafeFromBits(ToBits(%v)) = %v", s, got)
			}
			if got, ok := c.TryFromASCII(c.ToChar(s)); !ok || got != s {
				t.Errorf("TryFromASCII(ToChar(%v)) = %v, %v", s, got, ok)
			}
			if got := c.UnsafeFromASCII(c.ToChar(s)); got != s {
				t.Errorf("UnsafeFromASCII(ToChar(%v)) = %v", s, got)
			}
		})
	}
}

func TestDnaCodec_Misses(t *testing.T) {
	var c DnaCodec
	if _, ok := c.TryFromBits(4); ok {
		t.Error("TryFromBits(4) succeeded")
	}
	if _, ok := c.TryFromASCII('N'); ok {
		t.Error("TryFromASCII('N') succeeded")
	}
	if _, ok := c.TryFromASCII('a'); ok {
		t.Error("TryFromASCII('a') succeeded: Dna declares no lowercase alternates")
	}
}

func TestDnaCodec_Items(t *testing.T) {
	var c DnaCodec
	expectItems := []Dna{DnaA, DnaC, DnaG, DnaT}
	actualItems := c.Items()
	if len(actualItems) != len(expectItems) {
		t.Fatalf("wrong item count:\n\texpect: %d\n\tactual: %d", len(expectItems), len(actualItems))
	}
	for index := range expectItems {
		if actualItems[index] != expectItems[index] {
			t.Errorf("wrong item %d:\n\texpect: %v\n\tactual: %v", index, expectItems[index], actualItems[index])
		}
	}
}

func TestDna_Comp(t *testing.T) {
	expectPairs := map[Dna]Dna{
		DnaA: DnaT,
		DnaC: DnaG,
		DnaG: DnaC,
		DnaT: DnaA,
	}
	var c DnaCodec
	for _, s := range c.Items() {
		if got := s.Comp(); got != expectPairs[s] {
			t.Errorf("wrong complement for %v:\n\texpect: %v\n\tactual: %v", s, expectPairs[s], got)
		}
		if s.Comp() == s {
			t.Errorf("complement of %v is a fixed point", s)
		}
		if got := s.Comp().Comp(); got != s {
			t.Errorf("complement of %v is not an involution: got %v", s, got)
		}
	}
}
