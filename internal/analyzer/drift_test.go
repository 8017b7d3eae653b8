package analyzer

import (
	"math"
	"testing"
)

func sig(pairs ...any) []TopicKeyword {
	var out []TopicKeyword
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, TopicKeyword{Word: pairs[i].(string), Weight: pairs[i+1].(float64)})
	}
	return out
}

func TestOverlap_EmptySignatures(t *testing.T) {
	nonEmpty := sig("alpha", 0.5)

	if got := Overlap(nil, nil); got != DefaultOverlap {
		t.Errorf("Overlap(nil, nil) = %f, want %f", got, DefaultOverlap)
	}
	if got := Overlap(nonEmpty, nil); got != DefaultOverlap {
		t.Errorf("Overlap(sig, nil) = %f, want %f", got, DefaultOverlap)
	}
	if got := Overlap(nil, nonEmpty); got != DefaultOverlap {
		t.Errorf("Overlap(nil, sig) = %f, want %f", got, DefaultOverlap)
	}
}

func TestOverlap_Identical(t *testing.T) {
	s := sig("alpha", 0.5, "beta", 0.5)
	// Jaccard 1.0, weighted (1.0 + 1.0)/2 = 1.0 -> 0.6 + 0.4 = 1.0.
	if got := Overlap(s, s); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Overlap(s, s) = %f, want 1.0", got)
	}
}

func TestOverlap_Disjoint(t *testing.T) {
	a := sig("alpha", 1.0)
	b := sig("omega", 1.0)
	if got := Overlap(a, b); got != 0 {
		t.Errorf("disjoint overlap = %f, want 0", got)
	}
}

func TestOverlap_Blend(t *testing.T) {
	a := sig("shared", 0.6, "only-a", 0.4)
	b := sig("shared", 0.3, "only-b", 0.7)

	// Jaccard = 1/3; weighted = (0.6 + 0.3) / 2 = 0.45.
	want := 0.6*(1.0/3.0) + 0.4*0.45
	if got := Overlap(a, b); math.Abs(got-want) > 1e-9 {
		t.Errorf("Overlap = %f, want %f", got, want)
	}
}

func TestOverlap_IdenticalAtLeastDisjoint(t *testing.T) {
	s := sig("alpha", 0.3, "beta", 0.3, "gamma", 0.4)
	other := sig("delta", 0.5, "epsilon", 0.5)
	if Overlap(s, s) < Overlap(s, other) {
		t.Errorf("identical signatures scored below disjoint ones")
	}
}

func TestDriftScore(t *testing.T) {
	a := sig("alpha", 1.0)
	b := sig("omega", 1.0)
	if got := DriftScore(a, b); got != 1 {
		t.Errorf("disjoint drift = %f, want 1", got)
	}
	if got := DriftScore(nil, nil); got != 0.5 {
		t.Errorf("default drift = %f, want 0.5", got)
	}
}

func TestOverlap_SharedMajority(t *testing.T) {
	// Two signatures sharing 8 of 10 keywords should drift well under 0.4.
	var a, b []TopicKeyword
	shared := []string{"alpha", "bravo", "charlie", "delta", "echoes", "foxtrot", "golfing", "hotel"}
	for _, w := range shared {
		a = append(a, TopicKeyword{Word: w, Weight: 0.1})
		b = append(b, TopicKeyword{Word: w, Weight: 0.1})
	}
	a = append(a, TopicKeyword{Word: "india", Weight: 0.1}, TopicKeyword{Word: "juliet", Weight: 0.1})
	b = append(b, TopicKeyword{Word: "kilos", Weight: 0.1}, TopicKeyword{Word: "lima", Weight: 0.1})

	if drift := DriftScore(a, b); drift >= 0.4 {
		t.Errorf("drift for mostly-shared signatures = %f, want < 0.4", drift)
	}
}
