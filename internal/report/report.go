// Package report renders calculation results as the fixed-width,
// sectioned plain-text summary printed by the command line interface.
//
// Values are kept at full precision throughout the calculation and
// rounded only here, at presentation time: head-loss figures to six
// decimal places, everything else in shortest round-trip form.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/couchcryptid/pipe-headloss/internal/domain"
)

// lineWidth is the banner width every section header is centered in.
const lineWidth = 100

// Write renders the result to w. It is a convenience wrapper around
// Render for callers that stream to stdout or a buffer.
func Write(w io.Writer, res domain.Result) error {
	_, err := io.WriteString(w, Render(res))
	return err
}

// Render produces the full textual report. The minor-loss and total
// sections appear only when a non-zero global k-factor was computed.
func Render(res domain.Result) string {
	var b strings.Builder

	blank(&b)
	header(&b, " For the following inital values ", "-")
	line(&b, "Pipe diameter : %v meters", res.System.Diameter)
	line(&b, "Pipe length : %v meters", res.System.Length)
	line(&b, "Flow rate : %v m3/s", res.System.FlowRate)
	line(&b, "Pipe roughness : %v meters", res.System.Roughness)
	line(&b, "Volumetric mass : %v kg/m3", res.System.Density)
	line(&b, "Fluid dynamic viscosity : %v Pa/s", res.System.Viscosity)

	blank(&b)
	header(&b, " The program has calculated ", "-")
	line(&b, "Fluid_velocity : %v m/s", res.FluidVelocity)
	line(&b, "Relative roughness : %v", res.RelativeRoughness)
	line(&b, "Reynolds number : %v", res.ReynoldsNumber)

	blank(&b)
	header(&b, "Friction factors", "~")
	for _, entry := range res.FrictionFactors {
		line(&b, "%s : %v", entry.Model.Label(), entry.Value)
	}

	blank(&b)
	header(&b, "Major headloss", "~")
	for _, entry := range res.MajorHeadloss {
		line(&b, "%s : %v mCE", entry.Model.Label(), round6(entry.Value))
	}
	line(&b, "Average major headloss : %v mCE", round6(res.AverageMajorHeadloss))
	blank(&b)

	if res.Minor != nil && res.Minor.GlobalK != 0 {
		header(&b, "Minor headloss", "~")
		line(&b, "Global k factor : %v", res.Minor.GlobalK)
		line(&b, "Minor headloss : %v mCE", round6(res.Minor.Headloss))
		blank(&b)

		header(&b, "Total headloss", "~")
		line(&b, "The sum of average major headloss and minor headloss")
		line(&b, "%v mCE", round6(res.Minor.Total))
	}

	return b.String()
}

// header writes a centered section banner on its own line. Banners
// bypass the printf path; their content is never format-interpreted.
func header(b *strings.Builder, title, fill string) {
	b.WriteString(banner(title, fill))
	b.WriteByte('\n')
}

// banner centers title within lineWidth fill characters. When the
// padding is uneven the extra character goes on the right.
func banner(title, fill string) string {
	pad := lineWidth - len(title)
	if pad <= 0 {
		return title
	}
	left := pad / 2
	return strings.Repeat(fill, left) + title + strings.Repeat(fill, pad-left)
}

// round6 rounds half away from zero at the sixth decimal place.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func line(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}

// blank writes the double blank line separating report sections.
func blank(b *strings.Builder) {
	b.WriteString("\n\n")
}
