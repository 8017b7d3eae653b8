package analyzer

// DefaultOverlap is the similarity assumed when either topic signature is
// missing or empty. This covers both the first turn of a session (no
// comparison basis) and turns whose text yields no extractable keywords.
const DefaultOverlap = 0.5

// Jaccard and weighted-overlap blend weights.
const (
	jaccardWeight  = 0.6
	weightedWeight = 0.4
)

// Overlap compares two topic signatures and returns a similarity in [0, 1].
// It blends Jaccard similarity over the keyword sets with a weighted term
// that sums each shared word's weight in both signatures, halved.
func Overlap(a, b []TopicKeyword) float64 {
	if len(a) == 0 || len(b) == 0 {
		return DefaultOverlap
	}

	weightsA := make(map[string]float64, len(a))
	for _, kw := range a {
		weightsA[kw.Word] = kw.Weight
	}

	var intersection int
	var sharedWeight float64
	for _, kw := range b {
		if wa, ok := weightsA[kw.Word]; ok {
			intersection++
			sharedWeight += wa + kw.Weight
		}
	}

	union := len(a) + len(b) - intersection
	jaccard := 0.0
	if union > 0 {
		jaccard = float64(intersection) / float64(union)
	}
	weighted := sharedWeight / 2

	return clamp01(jaccardWeight*jaccard + weightedWeight*weighted)
}

// DriftScore is one minus the topical overlap between two signatures.
func DriftScore(a, b []TopicKeyword) float64 {
	return 1 - Overlap(a, b)
}
