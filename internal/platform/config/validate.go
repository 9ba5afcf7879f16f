package config

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todo-core/domain/todo"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Demo.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DemoConfig) validate() error {
	var errs []error

	if len(d.Seeds) == 0 {
		errs = append(errs, errors.New("demo.seeds must contain at least one title"))
	}
	if !todo.Priority(d.DefaultPriority).IsValid() {
		errs = append(errs, fmt.Errorf("demo.default_priority must be one of: low, medium, high, critical; got %q",
			d.DefaultPriority))
	}

	return errors.Join(errs...)
}
