package analyzer

// Session classification labels. Downstream presenters must treat any
// unrecognized label as ShapeMixed.
const (
	ShapeFocusedBuild           = "focused-build"
	ShapeResearchSpiral         = "research-spiral"
	ShapeCollaborativeDiscovery = "collaborative-discovery"
	ShapeSprint                 = "sprint"
	ShapeExploratory            = "exploratory"
	ShapeScattered              = "scattered"
	ShapeMixed                  = "mixed"
)

// SessionShape describes a whole conversation's working style through six
// normalized descriptors and a classification label.
type SessionShape struct {
	// Linearity is high when consecutive turns stay on topic.
	Linearity float64 `json:"linearity"`
	// Density is high when turn complexity and size are uniform.
	Density float64 `json:"density"`
	// Rhythm is high when response latencies are steady.
	Rhythm float64 `json:"rhythm"`
	// Breadth is high when many tool categories and topics are touched.
	Breadth float64 `json:"breadth"`
	// Convergence is positive when the session narrows toward a goal.
	Convergence float64 `json:"convergence"`
	// Momentum is high when complexity trends upward over the session.
	Momentum float64 `json:"momentum"`

	Classification string `json:"classification"`
	NodeCount      int    `json:"node_count"`
	DurationMs     int64  `json:"duration_ms"`

	// Profile sequences for downstream plotting, rounded per node.
	DriftProfile      []float64 `json:"drift_profile,omitempty"`
	ComplexityProfile []int     `json:"complexity_profile,omitempty"`
}

// Shape descriptor coefficients.
const (
	linearityDriftFactor = 1.5
	densityComplexityCV  = 0.6
	densityTokenCV       = 0.4
	rhythmLatencyCV      = 0.7
	breadthCategoryPart  = 0.5
	breadthDriftPart     = 0.5
	convergenceDriftPart = 0.6
	convergenceFocusPart = 0.4
)

// AnalyzeShape runs the batch second pass over all per-turn metrics of a
// session, producing the six descriptors and classification label. Nodes
// are assumed to be in turn order; durationMs is the span from the first to
// the last node's timestamp.
func AnalyzeShape(metrics []PromptMetrics, durationMs int64) SessionShape {
	n := len(metrics)

	if n == 0 {
		return SessionShape{
			Momentum:       0.5,
			Classification: ShapeMixed,
		}
	}

	if n == 1 {
		return SessionShape{
			Linearity:         1,
			Density:           1,
			Rhythm:            1,
			Momentum:          0.5,
			Classification:    ShapeSprint,
			NodeCount:         1,
			DurationMs:        durationMs,
			DriftProfile:      []float64{round2(metrics[0].TopicDriftScore)},
			ComplexityProfile: []int{metrics[0].ComplexityScore},
		}
	}

	drift := make([]float64, n)
	complexity := make([]float64, n)
	latency := make([]float64, n)
	tokens := make([]float64, n)
	focus := make([]float64, n)
	categorySet := make(map[string]bool)

	for i, m := range metrics {
		drift[i] = m.TopicDriftScore
		complexity[i] = float64(m.ComplexityScore)
		latency[i] = float64(m.LatencyMs)
		tokens[i] = float64(m.TokenEstimate)
		focus[i] = m.FocusScore
		for _, cat := range m.ToolCategories {
			categorySet[cat] = true
		}
	}

	linearity := clamp01(1 - mean(drift)*linearityDriftFactor)
	density := clamp01(1 - (densityComplexityCV*coefficientOfVariation(complexity) +
		densityTokenCV*coefficientOfVariation(tokens)))
	rhythm := clamp01(1 - rhythmLatencyCV*coefficientOfVariation(latency))
	breadth := clamp01(breadthCategoryPart*(float64(len(categorySet))/toolCategoryCount) +
		breadthDriftPart*stddev(drift))

	driftDelta := halfSplitDelta(drift)
	focusTrend := normalizedSlope(focus)
	convergence := clamp(convergenceDriftPart*driftDelta+convergenceFocusPart*focusTrend, -1, 1)

	complexityTrend := normalizedSlope(complexity)
	momentum := clamp01((complexityTrend + 1) / 2)

	shape := SessionShape{
		Linearity:   linearity,
		Density:     density,
		Rhythm:      rhythm,
		Breadth:     breadth,
		Convergence: convergence,
		Momentum:    momentum,
		NodeCount:   n,
		DurationMs:  durationMs,
	}

	shape.Classification = classifyShape(shape, mean(focus))

	shape.DriftProfile = make([]float64, n)
	for i, d := range drift {
		shape.DriftProfile[i] = round2(d)
	}
	shape.ComplexityProfile = make([]int, n)
	for i, m := range metrics {
		shape.ComplexityProfile[i] = m.ComplexityScore
	}

	return shape
}

// halfSplitDelta splits values at the floor midpoint (each half at least one
// element) and returns mean(first half) minus mean(second half). A positive
// delta means topic drift is settling down over the session.
func halfSplitDelta(values []float64) float64 {
	mid := len(values) / 2
	if mid == 0 {
		mid = 1
	}
	if mid == len(values) {
		mid = len(values) - 1
	}
	return mean(values[:mid]) - mean(values[mid:])
}

// classifyShape assigns the session classification via an ordered rule
// cascade. Rules are evaluated top to bottom; the first match wins and the
// thresholds are exact.
func classifyShape(s SessionShape, avgFocus float64) string {
	switch {
	case s.Linearity > 0.6 && s.Density > 0.5 && s.Convergence > 0 && avgFocus > 0.5:
		return ShapeFocusedBuild
	case s.Breadth > 0.4 && s.Convergence < -0.1 && s.Momentum > 0.5:
		return ShapeResearchSpiral
	case s.Linearity > 0.3 && s.Linearity < 0.7 && s.Breadth > 0.2 && s.Rhythm > 0.3:
		return ShapeCollaborativeDiscovery
	case s.NodeCount <= 8 && s.Linearity > 0.5 && s.Momentum > 0.4:
		return ShapeSprint
	case s.Linearity < 0.4 && s.Breadth > 0.3 && s.Convergence > -0.2 && s.Convergence < 0.2:
		return ShapeExploratory
	case s.Linearity < 0.35 && s.Density < 0.4 && s.Rhythm < 0.4:
		return ShapeScattered
	default:
		return ShapeMixed
	}
}
