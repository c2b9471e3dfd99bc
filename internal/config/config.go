package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/framesec/internal/tapered"
	"github.com/joho/godotenv"
)

// DefaultTaperScale multiplies relative tapered segment lengths on write so
// the native UI shows readable numbers. It has no structural meaning.
const DefaultTaperScale = 100.0

type Config struct {
	// ModelPath is the SQLite file holding the offline native model.
	ModelPath string
	// VendorDatabase names a built-in vendor database or a JSON database
	// file. Empty disables library matching.
	VendorDatabase string
	// TaperScale is the tapered segment length multiplier.
	TaperScale float64
	// Tolerance separates breakpoints at tapered discontinuities.
	Tolerance float64
	// Quiet suppresses diagnostic logging.
	Quiet bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ModelPath:  "model.db",
		TaperScale: DefaultTaperScale,
		Tolerance:  tapered.DefaultTolerance,
	}
}

// Load reads a .env file if present and applies FRAMESEC_* environment
// variables over the defaults. Flags are applied by the caller afterwards.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv applies environment values read through getenv over the defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv("FRAMESEC_MODEL")); v != "" {
		cfg.ModelPath = v
	}
	cfg.VendorDatabase = strings.TrimSpace(getenv("FRAMESEC_VENDOR_DB"))

	var err error
	if cfg.TaperScale, err = positiveFloat(getenv, "FRAMESEC_TAPER_SCALE", cfg.TaperScale); err != nil {
		return cfg, err
	}
	if cfg.Tolerance, err = positiveFloat(getenv, "FRAMESEC_TOLERANCE", cfg.Tolerance); err != nil {
		return cfg, err
	}
	if raw := strings.TrimSpace(getenv("FRAMESEC_QUIET")); raw != "" {
		if cfg.Quiet, err = strconv.ParseBool(raw); err != nil {
			return cfg, fmt.Errorf("FRAMESEC_QUIET: %w", err)
		}
	}
	return cfg, nil
}

// Validate checks values that may have come from flags.
func (c Config) Validate() error {
	if c.TaperScale <= 0 {
		return fmt.Errorf("taper scale must be positive, got %g", c.TaperScale)
	}
	if c.Tolerance <= 0 || c.Tolerance >= 0.5 {
		return fmt.Errorf("tolerance must lie in (0, 0.5), got %g", c.Tolerance)
	}
	return nil
}

func positiveFloat(getenv func(string) string, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(getenv(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", name, err)
	}
	if v <= 0 {
		return fallback, fmt.Errorf("%s must be positive, got %g", name, v)
	}
	return v, nil
}
