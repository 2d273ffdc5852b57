package report_generator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

const (
	titleHeight = 12
	rowHeight   = 7

	// grid is 12 columns wide
	colIndex   = 1
	colHeading = 3
	colName    = 3
	colScore   = 1
	colRollNo  = 2
	colCredits = 2
)

var (
	headerStyle = props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Left, Top: 1.5}
	cellStyle   = props.Text{Size: 8, Align: align.Left, Top: 1.5}
)

type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// GenerateReport renders the records as a PDF table.
func (g *Generator) GenerateReport(records []*domain.Record) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(titleHeight, "Extracted transcripts", props.Text{
			Style: fontstyle.Bold,
			Size:  14,
			Align: align.Center,
		}),
		text.NewRow(rowHeight, fmt.Sprintf("Generated %s, %d record(s)", g.now().Format(time.RFC1123), len(records)), props.Text{
			Size:  8,
			Align: align.Center,
		}),
		line.NewRow(4),
	)

	m.AddRow(rowHeight,
		text.NewCol(colIndex, "#", headerStyle),
		text.NewCol(colHeading, "Course", headerStyle),
		text.NewCol(colName, "Name", headerStyle),
		text.NewCol(colScore, "Score", headerStyle),
		text.NewCol(colRollNo, "Roll No", headerStyle),
		text.NewCol(colCredits, "Credits", headerStyle),
	)

	rows := make([]core.Row, 0, len(records))
	for i, r := range records {
		rows = append(rows, newRecordRow(i+1, r))
	}
	m.AddRows(rows...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	return doc.GetBytes(), nil
}

func newRecordRow(n int, r *domain.Record) core.Row {
	return row.New(rowHeight).Add(
		text.NewCol(colIndex, strconv.Itoa(n), cellStyle),
		text.NewCol(colHeading, value(r.Heading), cellStyle),
		text.NewCol(colName, value(r.Name), cellStyle),
		text.NewCol(colScore, value(r.Score), cellStyle),
		text.NewCol(colRollNo, value(r.RollNo), cellStyle),
		text.NewCol(colCredits, value(r.Credits), cellStyle),
	)
}

func value(s *string) string {
	if s == nil {
		return "-"
	}

	return *s
}
