package flatmapstats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sugawarayuuta/sonnet"
)

// ResultHeader names the six fields of a result row, in row order.
var ResultHeader = []string{
	"load factor",
	"Pr(group full)",
	"E(num hops), successful lookup",
	"E(num cmps), successful lookup",
	"E(num hops), unsuccessful lookup",
	"E(num cmps), unsuccessful lookup",
}

func (r Row) fields() []string {
	return []string{
		formatFloat(r.LoadFactor),
		formatFloat(r.FullRatio),
		formatFloat(r.HitHops),
		formatFloat(r.HitCmps),
		formatFloat(r.MissHops),
		formatFloat(r.MissCmps),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteDelimited emits the canonical text form: the label, the header line,
// then one ";"-separated row per load-factor point.
func WriteDelimited(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintln(w, res.Label); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(ResultHeader, ";")); err != nil {
		return err
	}

	for _, row := range res.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row.fields(), ";")); err != nil {
			return err
		}
	}

	return nil
}

// WriteTable renders the sweep as a human-readable table.
func WriteTable(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintln(w, res.Label); err != nil {
		return err
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(ResultHeader)
	for _, row := range res.Rows {
		tw.Append(row.fields())
	}
	tw.Render()

	return nil
}

// WriteJSON emits the sweep as a single JSON document.
func WriteJSON(w io.Writer, res *Result) error {
	buf, err := sonnet.Marshal(res)
	if err != nil {
		return err
	}

	buf = append(buf, '\n')
	_, err = w.Write(buf)

	return err
}
