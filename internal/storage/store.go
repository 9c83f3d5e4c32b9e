package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/gvolsim/internal/gvol"
)

const (
	metadataFile  = "metadata.json"
	particlesFile = "particles.csv"
)

var (
	// ErrCorrupt indicates a snapshot whose files disagree with each other.
	ErrCorrupt = errors.New("storage: corrupt snapshot")

	// ErrInvalidName indicates a snapshot name that is not a single path element.
	ErrInvalidName = errors.New("storage: invalid snapshot name")
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Timestamp       time.Time `json:"timestamp"`
	NonbondedMethod int       `json:"nonbonded_method"`
	MethodName      string    `json:"method_name"`
	// CutoffDistance is for display; CutoffBits is what Load reads.
	CutoffDistance string `json:"cutoff_distance"`
	CutoffBits     uint64 `json:"cutoff_bits"`
	NumParticles   int    `json:"num_particles"`
}

// Cutoff returns the stored cutoff distance exactly, including Inf and NaN.
func (m *Metadata) Cutoff() float64 {
	return math.Float64frombits(m.CutoffBits)
}

type particleRecord struct {
	Index    int     `csv:"index"`
	Radius   float64 `csv:"radius"`
	Gamma    float64 `csv:"gamma"`
	Hydrogen bool    `csv:"hydrogen"`
}

// Save writes a snapshot of f and returns its id. Nothing is left on disk if
// it fails.
func (s *Store) Save(name string, f *gvol.Force) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	ts := s.now()
	runID := fmt.Sprintf("%s_%d", name, ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	cutoff := f.CutoffDistance()
	meta := Metadata{
		ID:              runID,
		Name:            name,
		Timestamp:       ts,
		NonbondedMethod: int(f.NonbondedMethod()),
		MethodName:      f.NonbondedMethod().String(),
		CutoffDistance:  strconv.FormatFloat(cutoff, 'g', -1, 64),
		CutoffBits:      math.Float64bits(cutoff),
		NumParticles:    f.NumParticles(),
	}

	if err := writeSnapshot(runDir, &meta, f.Particles()); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func checkName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func writeSnapshot(runDir string, meta *Metadata, particles []gvol.Particle) error {
	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, particlesFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	if len(particles) == 0 {
		// gocsv does not write a header for an empty slice
		_, err := csvFile.WriteString("index,radius,gamma,hydrogen\n")
		return err
	}

	records := make([]*particleRecord, len(particles))
	for i, p := range particles {
		records[i] = &particleRecord{Index: i, Radius: p.Radius, Gamma: p.Gamma, Hydrogen: p.IsHydrogen}
	}
	return gocsv.Marshal(records, csvFile)
}

func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	runs := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.readMetadata(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

// Load rebuilds the force saved under runID.
func (s *Store) Load(runID string) (*gvol.Force, *Metadata, error) {
	if err := checkName(runID); err != nil {
		return nil, nil, err
	}
	meta, err := s.readMetadata(runID)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, particlesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records := []*particleRecord{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil && !errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return nil, nil, err
	}

	if len(records) != meta.NumParticles {
		return nil, nil, fmt.Errorf("%w: metadata lists %d particles, csv has %d", ErrCorrupt, meta.NumParticles, len(records))
	}

	f := gvol.NewForce()
	f.SetNonbondedMethod(gvol.NonbondedMethod(meta.NonbondedMethod))
	f.SetCutoffDistance(meta.Cutoff())
	for i, r := range records {
		if r.Index != i {
			return nil, nil, fmt.Errorf("%w: row %d has index %d", ErrCorrupt, i, r.Index)
		}
		f.AddParticle(r.Radius, r.Gamma, r.Hydrogen)
	}

	return f, meta, nil
}

func (s *Store) readMetadata(runID string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
