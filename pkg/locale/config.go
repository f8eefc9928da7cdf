package locale

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidRegion is returned when environment variables describe region
// settings the converters do not support.
var ErrInvalidRegion = errors.New("invalid region settings")

type regionConfig struct {
	DateFormat       string `env:"ARIAFORM_DATE_FORMAT" envDefault:"dmy"`
	DateSeparator    string `env:"ARIAFORM_DATE_SEPARATOR" envDefault:"/"`
	TimeFormat       string `env:"ARIAFORM_TIME_FORMAT" envDefault:"12"`
	TimeSeparator    string `env:"ARIAFORM_TIME_SEPARATOR" envDefault:":"`
	DecimalSeparator string `env:"ARIAFORM_DECIMAL_SEPARATOR" envDefault:","`
}

var loadDotenv sync.Once

// FromEnv builds Region from ARIAFORM_* environment variables, falling back
// to DefaultRegion values for anything unset. A .env file is honored when
// present, missing files are ignored.
func FromEnv() (Region, error) {
	loadDotenv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg regionConfig
	if err := env.Parse(&cfg); err != nil {
		return Region{}, fmt.Errorf("parse region settings: %w", err)
	}

	region := Region{
		DateFormat:       DateFormat(cfg.DateFormat),
		DateSeparator:    cfg.DateSeparator,
		TimeFormat:       TimeFormat(cfg.TimeFormat),
		TimeSeparator:    cfg.TimeSeparator,
		DecimalSeparator: cfg.DecimalSeparator,
	}

	switch region.DateFormat {
	case DMY, MDY, YMD:
	default:
		return Region{}, fmt.Errorf("%w: date format %q", ErrInvalidRegion, cfg.DateFormat)
	}
	switch region.TimeFormat {
	case Time12, Time24:
	default:
		return Region{}, fmt.Errorf("%w: time format %q", ErrInvalidRegion, cfg.TimeFormat)
	}
	switch region.DecimalSeparator {
	case ",", ".":
	default:
		return Region{}, fmt.Errorf("%w: decimal separator %q", ErrInvalidRegion, cfg.DecimalSeparator)
	}

	return region, nil
}
