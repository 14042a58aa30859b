// Package nodelink renders referral networks as node-link diagrams.
//
// Each participant becomes a box, each referral an arrow from referrer to
// candidate. Top-level referrers (participants nobody referred) are
// highlighted so the roots of the referral forest stand out at a glance.
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/refnetlabs/refnet/pkg/referral"
	"github.com/refnetlabs/refnet/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes direct and total reach counts in node labels.
	// When false, only the participant ID is shown.
	Detailed bool
}

// ToDOT converts a referral network to Graphviz DOT format.
// Output is deterministic: participants and edges appear in sorted order.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
func ToDOT(n *referral.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph referrals {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range n.Participants() {
		label := fmtLabel(n, p, opts.Detailed)
		attrs := fmtAttrs(n, p, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", p, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, referrer := range n.Referrers() {
		for _, candidate := range n.DirectReferrals(referrer) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", referrer, candidate)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *referral.Network, p string, detailed bool) string {
	if !detailed {
		return p
	}
	direct := len(n.DirectReferrals(p))
	total := n.TotalReach(p)
	return fmt.Sprintf("%s\ndirect: %d\ntotal: %d", p, direct, total)
}

func fmtAttrs(n *referral.Network, p string, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if _, referred := n.ReferrerOf(p); !referred {
		attrs = append(attrs, "fillcolor=lightgoldenrod")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
