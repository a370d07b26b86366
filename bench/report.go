package bench

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Report groups the summaries of one experiment under a fresh uuid, so
// rows from different invocations remain distinguishable after export.
type Report struct {
	ID        string
	Scenario  string
	Created   time.Time
	Summaries []Summary
}

// NewReport stamps the summaries with a scenario name, a uuid and the
// current time.
func NewReport(scenario string, summaries []Summary) Report {
	return Report{
		ID:        uuid.NewString(),
		Scenario:  scenario,
		Created:   time.Now(),
		Summaries: summaries,
	}
}

// WriteCSV exports the report, one row per summary, creating parent
// directories as needed.
//
// Complexity: O(len(Summaries)).
func (r Report) WriteCSV(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"report_id", "scenario", "algorithm", "runs",
		"cost_best", "cost_mean", "cost_std", "cost_median",
		"time_mean_ms", "time_std_ms",
	}
	if err = w.Write(header); err != nil {
		return err
	}

	for _, s := range r.Summaries {
		row := []string{
			r.ID,
			r.Scenario,
			s.Algorithm,
			strconv.Itoa(s.Runs),

			ftoa(s.BestCost),
			ftoa(s.MeanCost),
			ftoa(s.StdCost),
			ftoa(s.MedianCost),

			ftoa(s.MeanMs),
			ftoa(s.StdMs),
		}
		if err = w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
