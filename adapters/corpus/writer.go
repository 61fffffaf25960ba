package corpus

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"loansight/domain/profile"
	"loansight/internal/errors"
)

// Writer exports labeled profiles (typically synthetic corpora) to CSV or
// Excel, with the same column layout the reader accepts, so a generated
// corpus round-trips back into training.
type Writer struct {
	filePath string
	fileType string
}

// NewWriter creates a corpus writer; file type follows the extension.
func NewWriter(filePath string) *Writer {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &Writer{filePath: filePath, fileType: fileType}
}

// Write exports the profiles.
func (w *Writer) Write(profiles []profile.LabeledProfile) error {
	if len(profiles) == 0 {
		return errors.EmptyCorpus("corpus export")
	}

	rows := make([][]string, 0, len(profiles)+1)
	rows = append(rows, writeColumns())
	for i := range profiles {
		rows = append(rows, profileRow(&profiles[i]))
	}

	var err error
	switch w.fileType {
	case "csv":
		err = w.writeCSV(rows)
	default:
		err = w.writeExcel(rows)
	}
	if err != nil {
		return err
	}
	log.Printf("[CorpusWriter] wrote %d profiles to %s", len(profiles), w.filePath)
	return nil
}

func (w *Writer) writeCSV(rows [][]string) error {
	file, err := os.Create(w.filePath)
	if err != nil {
		return errors.Wrap(err, "creating CSV export")
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "writing CSV export")
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing CSV export")
}

func (w *Writer) writeExcel(rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "computing cell coordinates")
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			return errors.Wrap(err, "writing sheet row")
		}
	}
	return errors.Wrap(f.SaveAs(w.filePath), "saving Excel export")
}

// profileRow renders one profile in the fixed export column order.
func profileRow(lp *profile.LabeledProfile) []string {
	row := []string{lp.Profile.ProfileID, strconv.Itoa(lp.LoanApproved)}
	for _, f := range profile.ContinuousFieldOrder {
		v := profile.ContinuousFields[f](&lp.Profile)
		row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, f := range profile.CategoricalFieldOrder {
		row = append(row, profile.CategoricalFields[f](&lp.Profile))
	}
	return row
}
