package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/agbru/bigcalc/internal/bigint"
)

// CalibrationProfile stores the outcome of a calibration run together with
// the hardware it was measured on, so stale or foreign profiles can be
// rejected.
type CalibrationProfile struct {
	CPUModel  string `json:"cpu_model"`
	NumCPU    int    `json:"num_cpu"`
	GOARCH    string `json:"goarch"`
	GOOS      string `json:"goos"`
	GoVersion string `json:"go_version"`
	WordSize  int    `json:"word_size"`

	// OptimalFFTThreshold is in base-100 digit groups.
	OptimalFFTThreshold int           `json:"optimal_fft_threshold"`
	Measurements        []Measurement `json:"measurements,omitempty"`

	CalibratedAt    time.Time `json:"calibrated_at"`
	CalibrationTime string    `json:"calibration_time"`

	ProfileVersion int `json:"profile_version"`
}

const (
	// CurrentProfileVersion is bumped on incompatible format changes.
	CurrentProfileVersion = 1

	// DefaultProfileFileName is the profile name in the home directory.
	DefaultProfileFileName = ".bigcalc_calibration.json"
)

// GetDefaultProfilePath returns ~/.bigcalc_calibration.json, or the bare
// file name when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// NewProfile creates an empty profile describing the current machine.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		CPUModel:       getCPUModel(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		CalibratedAt:   time.Now(),
		ProfileVersion: CurrentProfileVersion,
	}
}

func getCPUModel() string {
	model := fmt.Sprintf("%s-%d-cores", runtime.GOARCH, runtime.NumCPU())
	if cpu.X86.HasAVX2 {
		model += "-avx2"
	}
	if cpu.X86.HasAVX512F {
		model += "-avx512"
	}
	return model
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var profile CalibrationProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// LoadProfile reads the profile at path, or at the default path if path is
// empty.
func LoadProfile(path string) (*CalibrationProfile, error) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	return loadProfile(path)
}

// SaveProfile writes the profile as indented JSON. An empty path selects
// the default path.
func (p *CalibrationProfile) SaveProfile(path string) error {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// IsValid reports whether the profile was measured on hardware matching
// this process and holds a usable threshold.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	if p.ProfileVersion != CurrentProfileVersion {
		return false
	}
	if p.NumCPU != runtime.NumCPU() || p.GOARCH != runtime.GOARCH {
		return false
	}
	if p.WordSize != 32<<(^uint(0)>>63) {
		return false
	}
	return p.OptimalFFTThreshold > 0
}

// IsStale reports whether the profile is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// Apply installs the profile's threshold in the bigint package and returns
// the previous value.
func (p *CalibrationProfile) Apply() int {
	return bigint.SetFFTThreshold(p.OptimalFFTThreshold)
}

func (p *CalibrationProfile) String() string {
	if p == nil {
		return "<nil profile>"
	}
	return fmt.Sprintf("CalibrationProfile{CPU: %s, FFT: %d groups, Sizes: %d, Calibrated: %s}",
		p.CPUModel, p.OptimalFFTThreshold, len(p.Measurements), p.CalibratedAt.Format(time.RFC3339))
}

// LoadOrCreateProfile loads the profile at path if it exists and is valid
// for this machine. Otherwise it returns a fresh profile and false.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	profile, err := LoadProfile(path)
	if err != nil || !profile.IsValid() {
		return NewProfile(), false
	}
	return profile, true
}

// ProfileExists reports whether a file exists at path (or the default
// path).
func ProfileExists(path string) bool {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	_, err := os.Stat(path)
	return err == nil
}
