// Package render provides visualization rendering for referral networks.
//
// # Overview
//
// This package contains the rendering helpers that turn a referral
// network into visual outputs:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	dot := nodelink.ToDOT(network, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the referral forest as a directed
// graph using Graphviz. Participants appear as boxes; each referral is
// an arrow from referrer to candidate. Top-level referrers (nobody
// referred them) are highlighted.
//
// [nodelink]: github.com/refnetlabs/refnet/pkg/render/nodelink
package render
