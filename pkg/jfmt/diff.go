package jfmt

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a whole-file line diff from before to after. Removed lines
// are prefixed with "-", added lines with "+" and unchanged lines with a
// space. When colored is set removals are red and additions green.
func Diff(path, before, after string, colored bool) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	hdr := color.New(color.Bold)
	for _, c := range []*color.Color{del, ins, hdr} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var out strings.Builder
	hdr.Fprintf(&out, "--- %s\n", path)
	hdr.Fprintf(&out, "+++ %s (formatted)\n", path)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				del.Fprintln(&out, "-"+line)
			case diffpatch.DiffInsert:
				ins.Fprintln(&out, "+"+line)
			case diffpatch.DiffEqual:
				out.WriteString(" " + line + "\n")
			}
		}
	}
	return out.String()
}

// splitLines splits s on newlines, dropping the empty tail after a final
// newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
