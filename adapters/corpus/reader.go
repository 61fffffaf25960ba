package corpus

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"loansight/domain/profile"
	"loansight/internal/errors"
)

// Reader loads a labeled training corpus from an Excel or CSV file.
// Numeric parsing is the loader's responsibility: a malformed cell fails
// the load instead of leaking a partial corpus into the core.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a corpus reader; file type follows the extension.
func NewReader(filePath string) *Reader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Load reads the corpus into labeled profiles.
func (r *Reader) Load() ([]profile.LabeledProfile, error) {
	log.Printf("[CorpusReader] reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("corpus file " + r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSV()
	case "xlsx":
		rows, err = r.readExcel()
	default:
		return nil, errors.InvalidInput("unsupported corpus file type: " + r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.InvalidInput("corpus file needs a header row and at least one data row")
	}
	return r.processRows(rows)
}

func (r *Reader) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "opening CSV corpus")
	}
	defer file.Close()

	start := time.Now()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV corpus")
	}
	log.Printf("[CorpusReader] CSV read in %.2fms (%d rows)",
		float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *Reader) readExcel() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "opening Excel corpus")
	}
	defer f.Close()

	start := time.Now()
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "reading Sheet1")
	}
	log.Printf("[CorpusReader] Sheet1 read in %.2fms (%d rows)",
		float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// processRows maps file headers to field setters and parses each data
// row. Unknown columns are logged once and skipped; a missing label
// column fails the load since unlabeled corpora cannot train anything.
func (r *Reader) processRows(rows [][]string) ([]profile.LabeledProfile, error) {
	headers := rows[0]
	labelIdx := -1
	type binding struct {
		idx     int
		numeric func(*profile.BorrowerProfile, float64)
		text    func(*profile.BorrowerProfile, string)
	}
	var bindings []binding

	for i, header := range headers {
		name := strings.TrimSpace(header)
		switch {
		case name == labelColumn:
			labelIdx = i
		case numericSetters[name] != nil:
			bindings = append(bindings, binding{idx: i, numeric: numericSetters[name]})
		case stringSetters[name] != nil:
			bindings = append(bindings, binding{idx: i, text: stringSetters[name]})
		default:
			log.Printf("[CorpusReader] skipping unknown column %q", name)
		}
	}
	if labelIdx < 0 {
		return nil, errors.InvalidInput("corpus file is missing the " + labelColumn + " column")
	}

	out := make([]profile.LabeledProfile, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		var lp profile.LabeledProfile
		for _, b := range bindings {
			if b.idx >= len(row) {
				continue // short Excel rows drop trailing empty cells
			}
			cell := strings.TrimSpace(row[b.idx])
			if b.text != nil {
				b.text(&lp.Profile, cell)
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %d: bad numeric value %q", rowNum+2, b.idx+1, cell)
			}
			b.numeric(&lp.Profile, v)
		}

		if labelIdx >= len(row) {
			return nil, errors.InvalidInput("row " + strconv.Itoa(rowNum+2) + " has no label cell")
		}
		label, err := strconv.Atoi(strings.TrimSpace(row[labelIdx]))
		if err != nil || (label != 0 && label != 1) {
			return nil, errors.InvalidInput("row " + strconv.Itoa(rowNum+2) + " has a non-binary label")
		}
		lp.LoanApproved = label
		out = append(out, lp)
	}

	log.Printf("[CorpusReader] loaded %d labeled profiles", len(out))
	return out, nil
}
