package analyzer

import "testing"

func TestExtractKeywords_Empty(t *testing.T) {
	if sig := ExtractKeywords(""); sig != nil {
		t.Errorf("expected nil signature for empty text, got %v", sig)
	}
	// Stop words and short words only.
	if sig := ExtractKeywords("the and for with this that"); sig != nil {
		t.Errorf("expected nil signature, got %v", sig)
	}
}

func TestExtractKeywords_FrequencyWeights(t *testing.T) {
	sig := ExtractKeywords("parse the parser, parse tokens quickly")

	// Kept words: parse x2, parser, tokens, quickly (total 5).
	if len(sig) != 4 {
		t.Fatalf("expected 4 keywords, got %d: %v", len(sig), sig)
	}
	if sig[0].Word != "parse" {
		t.Errorf("expected top keyword 'parse', got %q", sig[0].Word)
	}
	if diff := sig[0].Weight - 0.4; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected weight 0.4 for 'parse', got %f", sig[0].Weight)
	}
}

func TestExtractKeywords_DropsShortAndStopWords(t *testing.T) {
	sig := ExtractKeywords("fix the big bug in the code now")
	for _, kw := range sig {
		if len(kw.Word) <= 3 {
			t.Errorf("keyword %q should have been dropped for length", kw.Word)
		}
		if stopWords[kw.Word] {
			t.Errorf("stop word %q leaked into signature", kw.Word)
		}
	}
}

func TestExtractKeywords_SignatureCap(t *testing.T) {
	text := "alpha bravo charlie delta echoes foxtrot golfing hotel india juliet kilos lima mikes november"
	sig := ExtractKeywords(text)
	if len(sig) > maxSignatureSize {
		t.Errorf("signature exceeded cap: %d entries", len(sig))
	}
}

func TestExtractKeywords_KeepsHyphens(t *testing.T) {
	sig := ExtractKeywords("tune the drag-and-drop interaction")
	found := false
	for _, kw := range sig {
		if kw.Word == "drag-and-drop" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected hyphenated keyword to survive, got %v", sig)
	}
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	text := "build the parser then test the parser against real transcripts"
	a := ExtractKeywords(text)
	b := ExtractKeywords(text)
	if len(a) != len(b) {
		t.Fatalf("signature lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("signature entry %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
