package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
	"github.com/heartmarshall/myenglish-g2p/internal/phonetics/ipa"
)

// tableWriter buffers rows and renders them as one table on flush.
type tableWriter struct {
	segment bool
	rows    []table.Row
}

func (t *tableWriter) addResults(results []domain.G2PResult) {
	for _, r := range results {
		t.rows = append(t.rows, table.Row{r.Word, "/" + ipa.Join(r.Phonemes) + "/", strings.Join(r.Phonemes, " "), string(r.Source)})
	}
}

func (t *tableWriter) addSegmentation(input string, seg domain.Segmentation) {
	t.rows = append(t.rows, table.Row{input, strings.Join(seg.Phonemes, " "), strconv.Itoa(seg.Unknown)})
}

func (t *tableWriter) render(w io.Writer) error {
	if len(t.rows) == 0 {
		return nil
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	if t.segment {
		tw.AppendHeader(table.Row{"Input", "Phonemes", "Unknown"})
		tw.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft}})
	} else {
		tw.AppendHeader(table.Row{"Word", "IPA", "Phonemes", "Source"})
	}
	tw.AppendRows(t.rows)

	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
