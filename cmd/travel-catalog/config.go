// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pdiddy/travel-catalog/pkg/types"
)

var validate = validator.New()

// setDefaults registers the default value of every config key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("document", "")
	v.SetDefault("format", string(types.OutputText))
	v.SetDefault("output", "")
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)
}

// loadConfig decodes the run configuration from v. A document given on the
// command line overrides the configured one.
func loadConfig(v *viper.Viper, args []string) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if len(args) > 0 {
		cfg.Document = args[0]
	}
	cfg.Format = types.OutputFormat(strings.ToLower(string(cfg.Format)))

	if err := validate.Struct(cfg); err != nil {
		return cfg, configError(err)
	}
	return cfg, nil
}

// configError turns validator output into a message that names config keys.
func configError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Document":
			msgs = append(msgs, "no document given: pass a path or set 'document' in the config file")
		case "Format":
			msgs = append(msgs, fmt.Sprintf("invalid format %q: use text, yaml, or json", fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid %s: failed %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
