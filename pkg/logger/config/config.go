package config

import "errors"

const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (cfg Configuration) Validate() error {
	if cfg.Level < DEBUG_LEVEL || cfg.Level > ERROR_LEVEL {
		return errors.New("log level must be between -1 (debug) and 2 (error)")
	}
	if cfg.TimeFormat == "" {
		return errors.New("log time format must not be empty")
	}
	return nil
}
