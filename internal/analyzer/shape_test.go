package analyzer

import "testing"

// metricsWith builds a minimal metrics value for shape tests.
func metricsWith(drift float64, complexity int, latency int64, tokens int, focus float64, categories ...string) PromptMetrics {
	return PromptMetrics{
		TopicDriftScore: drift,
		ComplexityScore: complexity,
		LatencyMs:       latency,
		TokenEstimate:   tokens,
		FocusScore:      focus,
		ToolCategories:  categories,
	}
}

func TestAnalyzeShape_Empty(t *testing.T) {
	shape := AnalyzeShape(nil, 0)

	if shape.Classification != ShapeMixed {
		t.Errorf("empty classification = %q, want %q", shape.Classification, ShapeMixed)
	}
	if shape.Momentum != 0.5 {
		t.Errorf("empty momentum = %f, want 0.5", shape.Momentum)
	}
	if shape.NodeCount != 0 || shape.Linearity != 0 || shape.Breadth != 0 {
		t.Errorf("empty shape has nonzero descriptors: %+v", shape)
	}
}

func TestAnalyzeShape_SingleNode(t *testing.T) {
	shape := AnalyzeShape([]PromptMetrics{metricsWith(0.5, 40, 1000, 50, 0.7)}, 0)

	if shape.Classification != ShapeSprint {
		t.Errorf("single-node classification = %q, want %q", shape.Classification, ShapeSprint)
	}
	if shape.Linearity != 1 || shape.Density != 1 || shape.Rhythm != 1 {
		t.Errorf("single-node linearity/density/rhythm = %f/%f/%f, want 1/1/1",
			shape.Linearity, shape.Density, shape.Rhythm)
	}
	if shape.Breadth != 0 || shape.Convergence != 0 {
		t.Errorf("single-node breadth/convergence = %f/%f, want 0/0", shape.Breadth, shape.Convergence)
	}
	if shape.Momentum != 0.5 {
		t.Errorf("single-node momentum = %f, want 0.5", shape.Momentum)
	}
}

func TestAnalyzeShape_FocusedBuild(t *testing.T) {
	// On-topic, uniform, converging session with rising focus.
	metrics := []PromptMetrics{
		metricsWith(0.30, 50, 2000, 100, 0.50, "filesystem"),
		metricsWith(0.20, 50, 2000, 100, 0.60, "filesystem"),
		metricsWith(0.10, 50, 2000, 100, 0.70, "filesystem"),
		metricsWith(0.00, 50, 2000, 100, 0.80, "filesystem"),
	}

	shape := AnalyzeShape(metrics, 60000)

	if shape.Classification != ShapeFocusedBuild {
		t.Errorf("classification = %q, want %q (shape: %+v)", shape.Classification, ShapeFocusedBuild, shape)
	}
	if shape.Density != 1 {
		t.Errorf("uniform session density = %f, want 1", shape.Density)
	}
	if shape.Convergence <= 0 {
		t.Errorf("converging session convergence = %f, want > 0", shape.Convergence)
	}
	if shape.NodeCount != 4 || shape.DurationMs != 60000 {
		t.Errorf("node count/duration = %d/%d", shape.NodeCount, shape.DurationMs)
	}
}

func TestAnalyzeShape_DescriptorRanges(t *testing.T) {
	metrics := []PromptMetrics{
		metricsWith(0.9, 10, 100, 20, 0.2, "search", "browser"),
		metricsWith(0.1, 90, 45000, 800, 0.9, "filesystem"),
		metricsWith(0.7, 30, 3000, 60, 0.4, "execution", "other"),
		metricsWith(0.4, 70, 9000, 300, 0.6),
	}

	shape := AnalyzeShape(metrics, 120000)

	for name, v := range map[string]float64{
		"linearity": shape.Linearity,
		"density":   shape.Density,
		"rhythm":    shape.Rhythm,
		"breadth":   shape.Breadth,
		"momentum":  shape.Momentum,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s = %f, out of [0,1]", name, v)
		}
	}
	if shape.Convergence < -1 || shape.Convergence > 1 {
		t.Errorf("convergence = %f, out of [-1,1]", shape.Convergence)
	}
}

func TestAnalyzeShape_Profiles(t *testing.T) {
	metrics := []PromptMetrics{
		metricsWith(0.123, 10, 0, 10, 0.5),
		metricsWith(0.456, 20, 0, 10, 0.5),
		metricsWith(0.789, 30, 0, 10, 0.5),
	}

	shape := AnalyzeShape(metrics, 0)

	if len(shape.DriftProfile) != 3 || len(shape.ComplexityProfile) != 3 {
		t.Fatalf("profile lengths = %d/%d, want 3/3", len(shape.DriftProfile), len(shape.ComplexityProfile))
	}
	if shape.DriftProfile[0] != 0.12 || shape.DriftProfile[1] != 0.46 || shape.DriftProfile[2] != 0.79 {
		t.Errorf("drift profile not rounded to 2 places: %v", shape.DriftProfile)
	}
	if shape.ComplexityProfile[1] != 20 {
		t.Errorf("complexity profile = %v", shape.ComplexityProfile)
	}
}

func TestAnalyzeShape_Deterministic(t *testing.T) {
	metrics := []PromptMetrics{
		metricsWith(0.2, 40, 5000, 120, 0.6, "filesystem", "execution"),
		metricsWith(0.6, 80, 20000, 500, 0.3, "search"),
		metricsWith(0.4, 60, 1000, 200, 0.5),
	}

	first := AnalyzeShape(metrics, 30000)
	for i := 0; i < 3; i++ {
		again := AnalyzeShape(metrics, 30000)
		if again.Classification != first.Classification || again.Linearity != first.Linearity ||
			again.Convergence != first.Convergence {
			t.Fatalf("shape differs between runs: %+v vs %+v", first, again)
		}
	}
}
