package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/passaro/ray-tracer/pkg/renderer"
)

func displayRenderStats(stats renderer.RenderStats, luminance float64) {
	logger.Noticef("render statistics\n%s", formatRenderStats(stats, luminance))
}

func formatRenderStats(stats renderer.RenderStats, luminance float64) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "% of frame", "Busy time"})
	for _, w := range stats.Workers {
		framePercent := 0.0
		if stats.TotalPixels > 0 {
			framePercent = 100 * float64(w.Pixels) / float64(stats.TotalPixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Tiles),
			fmt.Sprintf("%d", w.Pixels),
			fmt.Sprintf("%02.1f %%", framePercent),
			w.Busy.String(),
		})
	}
	table.SetFooter([]string{
		stats.Size.String(),
		fmt.Sprintf("%d spp", stats.SamplesPerPixel),
		fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond()),
		fmt.Sprintf("lum %.3f", luminance),
		stats.Duration.String(),
	})

	table.Render()
	return buf.String()
}
