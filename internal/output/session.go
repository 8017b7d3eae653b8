package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/newjordan/prompt-quant-visualizer/internal/analyzer"
	"github.com/newjordan/prompt-quant-visualizer/internal/ingest"
)

// RenderSession renders a parse result as a styled dashboard: session
// rollup, shape descriptors, and a per-turn table.
func RenderSession(result ingest.ParseResult) string {
	var sb strings.Builder

	sb.WriteString(StyleHeader.Render("Session " + result.Meta.SessionID))
	sb.WriteString("\n\n")

	sb.WriteString(renderMeta(result.Meta))
	sb.WriteString("\n")
	sb.WriteString(RenderShape(result.Shape))
	sb.WriteString("\n")
	sb.WriteString(renderNodes(result.Nodes))

	if len(result.Errors) > 0 {
		sb.WriteString("\n")
		sb.WriteString(StyleBad.Render(fmt.Sprintf("%d malformed line(s) skipped", len(result.Errors))))
		sb.WriteString("\n")
		for _, e := range result.Errors {
			sb.WriteString(StyleMuted.Render(fmt.Sprintf("  line %d: %s", e.Line, e.Message)))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func renderMeta(meta ingest.SessionMeta) string {
	var sb strings.Builder
	writeStat := func(label, value string) {
		sb.WriteString(StyleLabel.Render(label))
		sb.WriteString(StyleBold.Render(value))
		sb.WriteString("\n")
	}

	writeStat("Turns", fmt.Sprintf("%d", meta.NodeCount))
	writeStat("Tokens (est)", fmt.Sprintf("%d", meta.TotalTokens))
	writeStat("Avg complexity", fmt.Sprintf("%.1f", meta.AvgComplexity))
	writeStat("Max complexity", fmt.Sprintf("%d", meta.MaxComplexity))
	writeStat("Avg latency", fmt.Sprintf("%.0f ms", meta.AvgLatencyMs))
	if len(meta.ToolsUsed) > 0 {
		writeStat("Tools", strings.Join(meta.ToolsUsed, ", "))
	}
	return sb.String()
}

// RenderShape renders the six shape descriptors and classification.
func RenderShape(shape analyzer.SessionShape) string {
	var sb strings.Builder

	sb.WriteString(StyleHeader.Render("Shape: "))
	sb.WriteString(classificationStyle(shape.Classification).Render(shape.Classification))
	sb.WriteString("\n")

	writeBar := func(label string, v float64) {
		sb.WriteString(StyleLabel.Render(label))
		sb.WriteString(gauge(v))
		sb.WriteString(fmt.Sprintf(" %.2f\n", v))
	}

	writeBar("Linearity", shape.Linearity)
	writeBar("Density", shape.Density)
	writeBar("Rhythm", shape.Rhythm)
	writeBar("Breadth", shape.Breadth)
	writeBar("Momentum", shape.Momentum)

	sb.WriteString(StyleLabel.Render("Convergence"))
	sb.WriteString(fmt.Sprintf("%+.2f\n", shape.Convergence))

	return sb.String()
}

func renderNodes(nodes []ingest.PromptNode) string {
	if len(nodes) == 0 {
		return StyleMuted.Render("no turns\n")
	}

	table := NewTable("#", "Intent", "Focus", "Cmplx", "Drift", "Latency", "Preview")
	for _, n := range nodes {
		m := n.Metrics
		if m == nil {
			continue
		}
		previewCell := n.TextPreview
		if len(previewCell) > 48 {
			previewCell = previewCell[:48]
		}
		table.AddRow(
			fmt.Sprintf("%d", n.Index),
			m.Intent,
			fmt.Sprintf("%.2f", m.FocusScore),
			fmt.Sprintf("%d", m.ComplexityScore),
			fmt.Sprintf("%.2f", m.TopicDriftScore),
			m.LatencyBucket,
			previewCell,
		)
	}
	return table.Render()
}

// gauge renders a ten-cell bar for a [0,1] value.
func gauge(v float64) string {
	filled := int(v * 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	switch {
	case v >= 0.7:
		return StyleGood.Render(bar)
	case v >= 0.4:
		return StyleWarn.Render(bar)
	default:
		return StyleBad.Render(bar)
	}
}

func classificationStyle(label string) lipgloss.Style {
	switch label {
	case analyzer.ShapeFocusedBuild, analyzer.ShapeSprint:
		return StyleGood
	case analyzer.ShapeScattered:
		return StyleBad
	default:
		return StyleWarn
	}
}
