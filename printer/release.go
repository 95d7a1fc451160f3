package printer

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/gofish-bot/version-publisher/models"
)

// Published prints the confirmation for a successful write.
func Published(w io.Writer, rawVersion string, result *models.Result) {
	fmt.Fprintf(w, "Success: version %s published to %s\n", rawVersion, result.Target.Path())
	release(w, result.Target, result.Release, humanize.Time(result.UpdateTime))
}

// DryRun prints the record that would have been written.
func DryRun(w io.Writer, target models.Target, rel models.ReleaseMetadata) {
	fmt.Fprintf(w, "Dry run: nothing written to %s\n", target.Path())
	release(w, target, rel, "not written")
}

func release(w io.Writer, target models.Target, rel models.ReleaseMetadata, updated string) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Field", "Value")
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	tbl.AddRow("project", target.ProjectID)
	tbl.AddRow("latestVersion", rel.LatestVersion)
	tbl.AddRow("downloadUrlAndroid", rel.DownloadURLAndroid)
	tbl.AddRow("downloadUrlWindows", orDash(rel.DownloadURLWindows))
	tbl.AddRow("downloadUrlMac", orDash(rel.DownloadURLMac))
	tbl.AddRow("updatedAt", updated)

	tbl.Print()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
