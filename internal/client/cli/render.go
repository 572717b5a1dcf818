package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderRecords(recs []models.MediaRecord) string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.ID,
			r.OriginalFilename,
			string(r.Status),
			strings.Join(r.TagNames(), ", "),
			r.CreatedAt,
		})
	}
	return renderTable([]string{"ID", "FILENAME", "STATUS", "TAGS", "CREATED"}, rows)
}

func renderAlbums(albums []models.Album) string {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		rows = append(rows, []string{
			a.ID,
			a.Name,
			a.Description,
			fmt.Sprintf("%d", a.ImageCount),
		})
	}
	return renderTable([]string{"ID", "NAME", "DESCRIPTION", "IMAGES"}, rows)
}

func renderDuplicateGroups(groups []models.DuplicateGroup) string {
	rows := make([][]string, 0)
	for i, g := range groups {
		for _, r := range g.Images {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%.2f", g.SimilarityScore),
				r.ID,
				r.OriginalFilename,
			})
		}
	}
	return renderTable([]string{"GROUP", "SCORE", "ID", "FILENAME"}, rows)
}

func renderUploadResults(items []*models.UploadItem) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		detail := item.RecordID
		if item.Err != nil {
			detail = item.Err.Error()
		}
		rows = append(rows, []string{
			item.Filename,
			string(item.State),
			detail,
		})
	}
	return renderTable([]string{"FILE", "STATE", "DETAIL"}, rows)
}
