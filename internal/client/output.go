package client

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/sheetcharts/models"
	"github.com/olekukonko/tablewriter"
)

const (
	previewRows = 5
	timeLayout  = "2006-01-02 15:04"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// printRows renders the first n records of a parsed sheet in column order.
func printRows(w io.Writer, columns []string, records []map[string]string, n int) {
	if len(columns) == 0 {
		fmt.Fprintln(w, "(no columns)")
		return
	}

	table := newTable(w, columns...)
	for i, record := range records {
		if i == n {
			break
		}
		line := make([]string, len(columns))
		for j, column := range columns {
			line[j] = record[column]
		}
		table.Append(line)
	}
	table.Render()

	if len(records) > n {
		fmt.Fprintf(w, "... %d more rows\n", len(records)-n)
	}
}

func printHistory(w io.Writer, list []models.History) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No uploads yet.")
		return
	}

	table := newTable(w, "ID", "File", "Uploaded", "Rows", "Size", "X", "Y", "Chart")
	for _, h := range list {
		table.Append([]string{
			strconv.FormatInt(h.ID, 10),
			h.FileName,
			h.UploadDate.Local().Format(timeLayout),
			strconv.Itoa(h.Rows),
			humanSize(h.FileSize),
			h.XAxis,
			h.YAxis,
			string(h.ChartType),
		})
	}
	table.Render()
}

func printAnalyses(w io.Writer, list []models.Analysis) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No saved analyses.")
		return
	}

	table := newTable(w, "ID", "Name", "File", "X", "Y", "Chart", "Created")
	for _, a := range list {
		table.Append([]string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			historyLabel(a.HistoryID),
			a.XAxis,
			a.YAxis,
			string(a.ChartType),
			a.CreatedAt.Local().Format(timeLayout),
		})
	}
	table.Render()
}

// historyLabel shows the file name of a populated reference and the bare id
// of a dangling one.
func historyLabel(ref models.HistoryRef) string {
	if ref.Populated() && ref.FileName != "" {
		return fmt.Sprintf("%s (#%d)", ref.FileName, ref.ID)
	}
	return fmt.Sprintf("#%d (deleted)", ref.ID)
}

func printDataset(w io.Writer, ds models.Dataset) {
	table := newTable(w, "Label", ds.Label)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for i, label := range ds.Labels {
		value := ""
		if i < len(ds.Values) {
			value = strconv.FormatFloat(ds.Values[i], 'f', -1, 64)
		}
		table.Append([]string{label, value})
	}
	table.Render()
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func formatExpiry(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(timeLayout)
}

// prompt reads one line from r, showing label first when the value is not
// already known.
func prompt(r *bufio.Reader, w io.Writer, label, current string) (string, error) {
	if current != "" {
		return current, nil
	}

	fmt.Fprintf(w, "%s: ", label)
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line), nil
}
