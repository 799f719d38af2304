package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortstep/internal/frame"
	"github.com/san-kum/sortstep/internal/session"
	"github.com/san-kum/sortstep/internal/trace"
)

const (
	metadataFile   = "metadata.json"
	transcriptFile = "transcript.txt"
	framesFile     = "frames.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string         `json:"id"`
	Input     string         `json:"input"`
	Timestamp time.Time      `json:"timestamp"`
	Elements  int            `json:"elements"`
	Steps     int            `json:"steps"`
	Sorted    []int          `json:"sorted"`
	Stats     *session.Stats `json:"stats"`
}

// Save writes a successful result under a fresh run directory. On any
// write failure the directory is removed, so List never sees half a run.
func (s *Store) Save(res *session.Result) (string, error) {
	if res == nil || !res.OK() {
		return "", fmt.Errorf("storage: refusing to save a failed session")
	}

	runID := uuid.NewString()
	if err := s.save(runID, res); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) save(runID string, res *session.Result) (err error) {
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta := RunMetadata{
		ID:        runID,
		Input:     res.Input,
		Timestamp: time.Now(),
		Elements:  len(res.Sorted),
		Steps:     len(res.Steps),
		Sorted:    res.Sorted,
		Stats:     res.Stats,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(runDir, metadataFile), append(data, '\n'), 0644); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(runDir, transcriptFile), []byte(res.Transcript+"\n"), 0644); err != nil {
		return err
	}

	return writeFrames(filepath.Join(runDir, framesFile), res.Frames)
}

func writeFrames(path string, frames []frame.Descriptor) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "kind", "title", "values", "highlights"}); err != nil {
		return err
	}
	for _, d := range frames {
		row := []string{
			strconv.Itoa(d.Index),
			d.Kind.String(),
			d.Title,
			joinInts(d.Values),
			encodeHighlights(d.Highlights),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns stored runs, newest first. Unreadable entries are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadTranscript(runID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, transcriptFile))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func (s *Store) LoadFrames(runID string) ([]frame.Descriptor, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []frame.Descriptor{}, nil
	}

	frames := make([]frame.Descriptor, 0, len(records)-1)
	for line, rec := range records[1:] {
		d, err := parseFrame(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", framesFile, line+2, err)
		}
		frames = append(frames, d)
	}
	return frames, nil
}

func parseFrame(rec []string) (frame.Descriptor, error) {
	if len(rec) != 5 {
		return frame.Descriptor{}, fmt.Errorf("expected 5 fields, got %d", len(rec))
	}
	idx, err := strconv.Atoi(rec[0])
	if err != nil {
		return frame.Descriptor{}, err
	}
	var kind trace.Kind
	if err := kind.UnmarshalText([]byte(rec[1])); err != nil {
		return frame.Descriptor{}, err
	}
	values, err := splitInts(rec[3])
	if err != nil {
		return frame.Descriptor{}, err
	}
	h, err := decodeHighlights(rec[4])
	if err != nil {
		return frame.Descriptor{}, err
	}
	return frame.Descriptor{Index: idx, Kind: kind, Title: rec[2], Values: values, Highlights: h}, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func splitInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func encodeHighlights(h trace.Highlights) string {
	idx := h.Indices()
	parts := make([]string, len(idx))
	for i, k := range idx {
		parts[i] = strconv.Itoa(k) + "=" + h[k].String()
	}
	return strings.Join(parts, " ")
}

func decodeHighlights(s string) (trace.Highlights, error) {
	h := trace.Highlights{}
	for _, part := range strings.Fields(s) {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("bad highlight %q", part)
		}
		idx, err := strconv.Atoi(k)
		if err != nil {
			return nil, err
		}
		var r trace.Role
		if err := r.UnmarshalText([]byte(v)); err != nil {
			return nil, err
		}
		h[idx] = r
	}
	return h, nil
}
