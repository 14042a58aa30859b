package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/refnetlabs/refnet/pkg/errors"
	"github.com/refnetlabs/refnet/pkg/render/nodelink"
)

// Output formats for the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

// validRenderFormats is the set of supported render formats.
var validRenderFormats = map[string]bool{
	formatDOT: true,
	formatSVG: true,
	formatPDF: true,
	formatPNG: true,
}

// renderCommand creates the render command for network diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		detailed   bool
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "render [scenario.toml|graph.json]",
		Short: "Render the referral network as a diagram",
		Long: `Render the referral network as a diagram.

Participants become boxes and referrals become arrows from referrer to
candidate. Top-level referrers are highlighted. Output formats are DOT,
SVG, PDF, and PNG (PDF and PNG require librsvg's rsvg-convert).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], formats, output, detailed, scale)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, pdf, png (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include reach counts in node labels")
	cmd.Flags().Float64Var(&scale, "scale", 2.0, "PNG scale factor")

	return cmd
}

// runRender generates the requested artifacts and writes them next to the input.
func (c *CLI) runRender(ctx context.Context, input string, formats []string, output string, detailed bool, scale float64) error {
	n, err := c.loadNetwork(ctx, input)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(n, nodelink.Options{Detailed: detailed})

	spinner := newSpinnerWithContext(ctx, "Rendering network...")
	spinner.Start()
	artifacts, err := renderFormats(dot, formats, scale)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	printSuccess("Rendered %d participants", n.ParticipantCount())
	for _, format := range formats {
		path := outputPath(input, output, format, len(formats) > 1)
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// renderFormats produces every requested format from the DOT source.
func renderFormats(dot string, formats []string, scale float64) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case formatDOT:
			data = []byte(dot)
		case formatSVG:
			data, err = nodelink.RenderSVG(dot)
		case formatPDF:
			data, err = nodelink.RenderPDF(dot)
		case formatPNG:
			data, err = nodelink.RenderPNG(dot, scale)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all formats are supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validRenderFormats[f] {
			return apperrors.New(apperrors.ErrCodeInvalidFormat,
				"invalid format: %q (must be one of: dot, svg, pdf, png)", f)
		}
	}
	return nil
}

// outputPath derives the artifact path from the input name, the --output
// flag, and the format. With multiple formats, --output acts as a base
// path and the extension is replaced per format.
func outputPath(input, output, format string, multi bool) string {
	if output != "" {
		if !multi {
			return output
		}
		return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
