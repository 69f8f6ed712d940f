package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Parse builds a Config from command-line args. Precedence, lowest first:
// defaults, the YAML file named by -config, explicit flags, then repeatable
// -set key=value overrides.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()
	path, sets, err := parseInto(&cfg, name, args, output)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		// Flags win over the file.
		if _, _, err := parseInto(&cfg, name, args, io.Discard); err != nil {
			return cfg, err
		}
	}

	overrides := make(map[string]string, len(sets))
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return cfg, fmt.Errorf("override %q: want key=value", kv)
		}
		overrides[key] = value
	}
	cfg.Apply(overrides)
	return cfg, nil
}

func parseInto(cfg *Config, name string, args []string, output io.Writer) (string, kvList, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	cfg.Bind(fs)
	path := fs.String("config", "", "YAML config file")
	var sets kvList
	fs.Var(&sets, "set", "override in key=value form (repeatable)")
	if err := fs.Parse(args); err != nil {
		return "", nil, err
	}
	return *path, sets, nil
}
