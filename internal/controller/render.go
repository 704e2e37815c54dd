package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// section is one titled block of output.
type section struct {
	title string
	body  string
}

func newTable(buffer *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderBaseline(baseline *m.Baseline) []section {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"#", "Method", "Offset", "Span", "Flags", "Documents"})

	for _, statement := range baseline.Statements() {
		docs := make([]string, 0, len(statement.Documents))
		for _, doc := range statement.Documents {
			docs = append(docs, string(doc))
		}

		table.Append([]string{
			strconv.Itoa(statement.Ordinal),
			statement.Method().String(),
			fmt.Sprintf("0x%x", statement.Instruction.Offset),
			statement.Span.String(),
			statement.Flags.String(),
			strings.Join(docs, ", "),
		})
	}

	table.SetFooter([]string{"", "", "", "", "Statements", strconv.Itoa(baseline.Len())})
	table.Render()

	return []section{{title: "Active statements", body: buffer.String()}}
}

func renderExceptionRegions(baseline *m.Baseline, regions map[int]m.ExceptionRegions) []section {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"#", "Document", "Span", "Exception regions"})

	for _, statement := range baseline.Statements() {
		table.Append([]string{
			strconv.Itoa(statement.Ordinal),
			string(statement.Document),
			statement.Span.String(),
			formatRegions(regions[statement.Ordinal]),
		})
	}

	table.Render()

	return []section{{title: "Exception regions", body: buffer.String()}}
}

func formatRegions(regions m.ExceptionRegions) string {
	if !regions.Available {
		return "unavailable"
	}

	if len(regions.Spans) == 0 {
		return "-"
	}

	spans := make([]string, 0, len(regions.Spans))
	for _, span := range regions.Spans {
		spans = append(spans, span.String())
	}

	return strings.Join(spans, " < ")
}

func renderUpdates(result m.UpdateResult, ledgerDiff string) []section {
	var statements bytes.Buffer

	table := newTable(&statements, []string{"Method", "Offset", "New span"})
	for _, update := range result.ActiveStatements {
		table.Append([]string{update.Method.String(), fmt.Sprintf("0x%x", update.Offset), update.NewSpan.String()})
	}

	table.SetFooter([]string{"", "Updates", strconv.Itoa(len(result.ActiveStatements))})
	table.Render()

	var regions bytes.Buffer

	table = newTable(&regions, []string{"Method", "New span", "Delta"})
	for _, update := range result.ExceptionRegions {
		table.Append([]string{update.Method.String(), update.NewSpan.String(), formatDelta(update.Delta)})
	}

	table.SetFooter([]string{"", "Updates", strconv.Itoa(len(result.ExceptionRegions))})
	table.Render()

	sections := []section{
		{title: "Active statement updates", body: statements.String()},
		{title: "Exception region updates", body: regions.String()},
	}

	sections = append(sections, renderLedger(result.Ledger)...)

	if ledgerDiff != "" {
		sections = append(sections, section{title: "Ledger changes", body: ledgerDiff})
	}

	return sections
}

func renderLedger(ledger m.Ledger) []section {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"Method", "Old span", "Delta", "Kind"})

	regions := 0

	for _, entry := range ledger.Entries() {
		for _, region := range entry.Regions {
			kind := "statement"
			if region.IsExceptionRegion {
				kind = "exception region"
			}

			table.Append([]string{entry.Method.String(), region.OldSpan.String(), formatDelta(region.Delta), kind})

			regions++
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Methods %d", ledger.Len()), "Regions", strconv.Itoa(regions), ""})
	table.Render()

	return []section{{title: "Non-remappable regions", body: buffer.String()}}
}

func renderJournal(records []m.EditRecord) []section {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"Applied", "Session", "Module", "Recompiled", "Statements", "Regions", "Ledger"})

	sorted := append([]m.EditRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].AppliedAt.Before(sorted[j].AppliedAt) })

	for _, record := range sorted {
		tokens := make([]string, 0, len(record.Recompiled))
		for _, token := range record.Recompiled {
			tokens = append(tokens, fmt.Sprintf("0x%08x", token))
		}

		table.Append([]string{
			record.AppliedAt.Format(time.RFC3339),
			record.Session,
			string(record.Module),
			strings.Join(tokens, " "),
			strconv.Itoa(len(record.ActiveStatements)),
			strconv.Itoa(len(record.ExceptionRegions)),
			strconv.Itoa(len(record.Ledger)),
		})
	}

	table.Render()

	return []section{{title: "Applied edits", body: buffer.String()}}
}

func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	}

	return strconv.Itoa(delta)
}
