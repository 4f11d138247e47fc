// Package config applies environment overrides to command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces the environment variables read by ApplyEnv.
const EnvPrefix = "AMPLITUDE_"

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding existing ones. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %q: %w", path, err)
		}
	}
	return nil
}

// EnvName maps a flag name such as "enable-audio" to AMPLITUDE_ENABLE_AUDIO.
func EnvName(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// ApplyEnv sets every flag of fs that was not given on the command line from
// its environment variable, if present. Call it after fs.Parse.
func ApplyEnv(set *flag.FlagSet) error {
	return applyEnv(set, os.LookupEnv)
}

func applyEnv(set *flag.FlagSet, lookup func(string) (string, bool)) error {
	explicit := make(map[string]bool)
	set.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var errs []error
	set.VisitAll(func(f *flag.Flag) {
		if explicit[f.Name] {
			return
		}
		value, ok := lookup(EnvName(f.Name))
		if !ok {
			return
		}
		if err := set.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvName(f.Name), err))
		}
	})
	return errors.Join(errs...)
}
