package progress

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/modsync/pkg/orchestration"
	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/arthur-debert/modsync/pkg/ui/styles"
)

// RenderReport summarizes a finished sync
func RenderReport(r *orchestration.Report, rich bool) string {
	if r == nil {
		return ""
	}

	style := func(name, s string) string {
		if rich {
			return styles.Render(name, s)
		}
		return s
	}

	var b strings.Builder
	title := "Sync summary"
	if r.DryRun {
		title = "Dry run: no changes made"
	}
	b.WriteString(style("Header", title))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Mods directory: %s\n", style("FilePath", r.ModsDir))
	if r.BackupDir != "" {
		fmt.Fprintf(&b, "Backup:         %s\n", style("FilePath", r.BackupDir))
	}
	fmt.Fprintf(&b, "Manifest:       %d mods\n", len(r.Remote))

	verbRemove, verbDownload := "removed", "downloaded"
	if r.DryRun {
		verbRemove, verbDownload = "would remove", "would download"
	}
	writeGroup(&b, verbRemove, "-", r.Plan.Remove, "Removed", style)
	writeGroup(&b, verbDownload, "+", r.Plan.Download, "Downloaded", style)
	fmt.Fprintf(&b, "%s\n", style("Muted", fmt.Sprintf("%d already up to date", len(r.Plan.Present))))

	return b.String()
}

func writeGroup(b *strings.Builder, verb, marker string, names []types.ModName, styleName string, style func(string, string) string) {
	fmt.Fprintf(b, "%d %s\n", len(names), verb)
	for _, name := range names {
		fmt.Fprintf(b, "  %s %s\n", style(styleName, marker), name)
	}
}
