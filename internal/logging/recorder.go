package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"findaword/internal/eval"
	"findaword/internal/ga"
)

// Recorder writes per-generation summaries to CSV and JSONL files and the console log.
// Empty paths disable the corresponding file.
type Recorder struct {
	runID       string
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	logger      *slog.Logger
	initialized bool
}

// NewRecorder creates a recorder with a fresh run id
func NewRecorder(csvPath, jsonPath string, logger *slog.Logger) (*Recorder, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Recorder{
		runID:    uuid.NewString()[:12],
		csvPath:  csvPath,
		jsonPath: jsonPath,
		logger:   logger,
	}

	// Ensure directories exist
	for _, p := range []string{csvPath, jsonPath} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// RunID identifies the run in every JSONL record
func (r *Recorder) RunID() string {
	return r.runID
}

// Init opens the log files and writes the CSV header
func (r *Recorder) Init() error {
	var err error

	if r.csvPath != "" {
		r.csvFile, err = os.Create(r.csvPath)
		if err != nil {
			return err
		}
		r.csvWriter = csv.NewWriter(r.csvFile)

		header := []string{
			"generation", "strategies", "best_score", "mean_score", "std_score",
			"elites", "children", "refilled", "champion",
		}
		if err := r.csvWriter.Write(header); err != nil {
			return err
		}
	}

	if r.jsonPath != "" {
		r.jsonFile, err = os.OpenFile(r.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
	}

	r.initialized = true
	return nil
}

// Close flushes and closes all log files
func (r *Recorder) Close() error {
	var firstErr error
	if r.csvWriter != nil {
		r.csvWriter.Flush()
		firstErr = r.csvWriter.Error()
	}
	for _, f := range []*os.File{r.csvFile, r.jsonFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	RunID      string  `json:"run_id"`
	Generation int     `json:"generation"`
	Strategies string  `json:"strategies"`
	BestScore  float64 `json:"best_score"`
	MeanScore  float64 `json:"mean_score"`
	StdScore   float64 `json:"std_score"`
	Elites     int     `json:"elites"`
	Children   int     `json:"children"`
	Refilled   int     `json:"refilled"`
	Champion   string  `json:"champion"`
}

// Summarize builds the summary of a generation step
func (r *Recorder) Summarize(report *ga.Report) GenerationSummary {
	stats := eval.Summarize(report.Scores)
	return GenerationSummary{
		RunID:      r.runID,
		Generation: report.Generation,
		Strategies: report.Strategies,
		BestScore:  stats.Best,
		MeanScore:  stats.Mean,
		StdScore:   stats.Std,
		Elites:     report.Elites,
		Children:   report.Children,
		Refilled:   report.Refilled,
		Champion:   report.Champion,
	}
}

// LogGeneration records a generation summary
func (r *Recorder) LogGeneration(report *ga.Report) error {
	if !r.initialized {
		return nil
	}
	summary := r.Summarize(report)

	if r.csvWriter != nil {
		row := []string{
			strconv.Itoa(summary.Generation),
			summary.Strategies,
			fmt.Sprintf("%.6f", summary.BestScore),
			fmt.Sprintf("%.6f", summary.MeanScore),
			fmt.Sprintf("%.6f", summary.StdScore),
			strconv.Itoa(summary.Elites),
			strconv.Itoa(summary.Children),
			strconv.Itoa(summary.Refilled),
			summary.Champion,
		}
		if err := r.csvWriter.Write(row); err != nil {
			return err
		}
		r.csvWriter.Flush()
	}

	if r.jsonFile != nil {
		line, err := json.Marshal(summary)
		if err != nil {
			return err
		}
		if _, err := r.jsonFile.Write(append(line, '\n')); err != nil {
			return err
		}
	}

	r.logger.Info("generation",
		slog.Int("generation", summary.Generation),
		slog.String("strategies", summary.Strategies),
		slog.Float64("best", summary.BestScore),
		slog.Float64("mean", summary.MeanScore),
		slog.String("champion", summary.Champion),
	)
	return nil
}

// Champion is the saved best individual of a run
type Champion struct {
	Generation int     `json:"generation"`
	Score      float64 `json:"score"`
	Metric     string  `json:"metric"`
	Genome     string  `json:"genome"`
}

// SaveChampion saves the champion genome to a file
func SaveChampion(path string, c Champion) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadChampion loads a champion from a file
func LoadChampion(path string) (*Champion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Champion
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
