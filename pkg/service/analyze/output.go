package analyze

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/jsonlens/jsonlens/pkg/models"
	"github.com/jsonlens/jsonlens/utils"
	"github.com/olekukonko/tablewriter"
)

// tableColumns is the fixed column order of the table renderers.
var tableColumns = []string{"$count", "$count_falsy", "$parse", "$type", "$key"}

func (a *Analyzer) render(rows []models.FieldSummary) error {
	if a.config.Table {
		if a.config.Verbose {
			return a.renderVerboseTable(rows)
		}
		return a.renderTable(rows)
	}
	return a.renderJSON(rows)
}

// renderJSON writes the report as a json array, indented when pretty mode is
// on and with the derived fields added in verbose mode.
func (a *Analyzer) renderJSON(rows []models.FieldSummary) error {
	var result interface{} = rows
	if a.config.Verbose {
		verbose := make([]models.VerboseFieldSummary, 0, len(rows))
		for _, row := range rows {
			verbose = append(verbose, row.Verbose())
		}
		result = verbose
	}

	var out []byte
	var err error
	if a.config.Pretty {
		out, err = json.MarshalIndent(result, "", "    ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		utils.LogError(a.logger, err, "failed to marshal the report")
		return err
	}
	out = append(out, '\n')
	if _, err := a.out.Write(out); err != nil {
		utils.LogError(a.logger, err, "failed to write the report")
		return err
	}
	return nil
}

// renderTable writes the report as a tab separated table, one header line
// and one line per row.
func (a *Analyzer) renderTable(rows []models.FieldSummary) error {
	var sb strings.Builder
	sb.WriteString(strings.Join(tableColumns, "\t"))
	sb.WriteByte('\n')
	for _, row := range rows {
		fmt.Fprintf(&sb, "%d\t%d\t%s\t%s\t%s\n", row.Count, row.CountFalsy, row.Parse.String(), row.Type, row.Key)
	}
	if _, err := io.WriteString(a.out, sb.String()); err != nil {
		utils.LogError(a.logger, err, "failed to write the report")
		return err
	}
	return nil
}

// renderVerboseTable writes a bordered table with the derived falsy ratio
// column. Rows with falsy occurrences get their falsy cells highlighted.
func (a *Analyzer) renderVerboseTable(rows []models.FieldSummary) error {
	paint := color.New(color.FgYellow).SprintFunc()

	table := tablewriter.NewWriter(a.out)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(append(append([]string{}, tableColumns...), "$ratio_falsy"))
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.FgHiCyanColor},
	)

	for _, row := range rows {
		verbose := row.Verbose()
		countFalsy := strconv.Itoa(verbose.CountFalsy)
		ratio := strconv.FormatFloat(verbose.RatioFalsy, 'f', 2, 64)
		if verbose.CountFalsy > 0 {
			countFalsy = paint(countFalsy)
			ratio = paint(ratio)
		}
		table.Append([]string{
			strconv.Itoa(verbose.Count),
			countFalsy,
			verbose.Parse.String(),
			verbose.Type,
			verbose.Key,
			ratio,
		})
	}
	table.Render()
	return nil
}
