package conftools

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const redacted = "***REDACTED***"

func decoderHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "json"
	dc.ErrorUnused = true
}

// Initialize prepares the global viper instance to read name.{yaml,json,...} and the environment.
func Initialize(name string) {
	Prepare(viper.GetViper(), name)
}

// Prepare makes v read configuration from a file called name in the working directory,
// and from environment variables named after the keys in upper case with dashes and dots as underscores.
func Prepare(v *viper.Viper, name string) {
	v.SetConfigName(name)
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
}

// Load parses the command line into flag.CommandLine and decodes all settings into cfg.
func Load(cfg interface{}) error {
	return LoadFrom(viper.GetViper(), flag.CommandLine, os.Args[1:], cfg)
}

// LoadFrom decodes the merged settings of v into cfg.
// Flags are parsed from args.
// Precedence is flags, environment, configuration file, flag defaults.
func LoadFrom(v *viper.Viper, flags *flag.FlagSet, args []string, cfg interface{}) error {
	var err error

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	err = flags.Parse(args)
	if err != nil {
		return err
	}

	err = v.BindPFlags(flags)
	if err != nil {
		return err
	}

	err = v.Unmarshal(cfg, decoderHook)
	if err != nil {
		return err
	}

	return nil
}

// Return a human-readable printout of all configuration options, except secret stuff.
func Format(disallowedKeys []string) []string {
	return FormatFrom(viper.GetViper(), disallowedKeys)
}

func FormatFrom(v *viper.Viper, disallowedKeys []string) []string {
	ok := func(key string) bool {
		for _, forbiddenKey := range disallowedKeys {
			if forbiddenKey == key {
				return false
			}
		}
		return true
	}

	var keys sort.StringSlice = v.AllKeys()

	printed := make([]string, 0)

	keys.Sort()
	for _, key := range keys {
		if ok(key) {
			printed = append(printed, fmt.Sprintf("%s: %v", key, v.Get(key)))
		} else {
			printed = append(printed, fmt.Sprintf("%s: %s", key, redacted))
		}
	}

	return printed
}
