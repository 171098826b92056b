// Package render turns a collected SystemInfo into aligned logo/fact rows.
package render

import (
	"fmt"
	"io"
	"strings"

	"minifetch/internal/system"
)

// Options are the display toggles. A disabled row is not emitted at all.
type Options struct {
	ShowSerial bool
	ShowGPU    bool
}

// labelWidth is the column the "Label:" prefix is padded to.
const labelWidth = 8

func row(label, value string) string {
	return fmt.Sprintf("%-*s%s", labelWidth, label+":", value)
}

// FormatUptime renders seconds since boot as "Nd Nh Nm", dropping leading
// zero units ("7h 5m", "5m").
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	minutes := seconds % 3600 / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// Lines builds the fact lines in display order: user@host header, dash rule,
// OS, Serial, Kernel, Uptime, one row per CPU brand, one row per GPU, Memory.
func Lines(info system.SystemInfo, opts Options) []string {
	header := info.Username + "@" + info.Hostname
	lines := []string{
		header,
		strings.Repeat("-", len(header)),
		row("OS", info.OS),
	}
	if opts.ShowSerial {
		lines = append(lines, row("Serial", info.SerialNumber))
	}
	lines = append(lines,
		row("Kernel", info.Kernel),
		row("Uptime", FormatUptime(info.UptimeSeconds)),
	)
	for _, c := range info.CPUs {
		lines = append(lines, row("CPU", fmt.Sprintf("%s - %d cores, %.2f%% avg, %.2f MHz (max)",
			c.Brand, c.Cores, c.AvgUsage, c.MaxFrequencyMHz)))
	}
	if opts.ShowGPU {
		for _, g := range info.GPUs {
			lines = append(lines, row(fmt.Sprintf("GPU %d", g.Index), g.Model))
		}
	}
	lines = append(lines, row("Memory", fmt.Sprintf("%d/%d MB used", info.MemoryUsedMB, info.MemoryTotalMB)))
	return lines
}

// Render pairs each logo line with a fact line on the same row and writes the
// result to w. Whichever side is longer finishes unpaired: extra fact lines
// are indented by the logo width, extra logo lines print bare. The block is
// framed by blank lines.
func Render(w io.Writer, info system.SystemInfo, opts Options) error {
	lines := Lines(info, opts)
	indent := strings.Repeat(" ", LogoWidth)

	rows := len(lines)
	if len(Logo) > rows {
		rows = len(Logo)
	}

	var b strings.Builder
	b.WriteByte('\n')
	for i := 0; i < rows; i++ {
		switch {
		case i < len(Logo) && i < len(lines):
			b.WriteString(Logo[i])
			b.WriteString(lines[i])
		case i < len(lines):
			b.WriteString(indent)
			b.WriteString(lines[i])
		default:
			b.WriteString(Logo[i])
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
