package config

import (
	"io"
	"os"

	"github.com/momentum-xyz/spawnschema/internal/logger"

	"github.com/kelseyhightower/envconfig"
	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// Config : structure to hold configuration
type Config struct {
	Settings   Local      `yaml:"settings"`
	Conversion Conversion `yaml:"conversion"`

	// Args holds the positional command line arguments left after flag parsing.
	Args []string `yaml:"-" ignored:"true"`
}

func (x *Config) Init() {
	x.Settings.Init()
	x.Conversion.Init()
}

func (x *Config) Validate() error {
	if x.Settings.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", x.Settings.Workers)
	}
	return x.Conversion.Validate()
}

const configFileName = "config.yaml"

var log = logger.L()

func defConfig() *Config {
	var cfg Config
	cfg.Init()
	return &cfg
}

func readOpts(cfg *Config, args []string) (bool, error) {
	set := getopt.New()
	helpFlag := false
	set.Flag(&helpFlag, 'h', "display help")
	set.Flag(&cfg.Settings.LogLevel, 'l', "log level (-1 debug, 0 info, 1 warn)")
	set.FlagLong(&cfg.Settings.StatsDir, "stats", 's', "directory of per-species stats files")
	set.FlagLong(&cfg.Settings.SpawnSetDir, "sets", 'p', "directory of spawn set files")
	set.FlagLong(&cfg.Settings.ItemMapping, "items", 'i', "item mapping file")
	set.FlagLong(&cfg.Settings.Output, "output", 'o', "output file")
	set.FlagLong(&cfg.Settings.RelationsStore, "relations", 'r', "spawn relation store")
	set.FlagLong(&cfg.Settings.Workers, "workers", 'w', "number of species converted concurrently")

	if err := set.Getopt(args, nil); err != nil {
		set.PrintUsage(os.Stderr)
		return false, errors.WithMessage(err, "failed to parse options")
	}
	if helpFlag {
		set.PrintUsage(os.Stderr)
	}
	cfg.Args = set.Args()
	return helpFlag, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

func readFile(cfg *Config, filename string) error {
	if !fileExists(filename) {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return errors.WithMessage(err, "failed to open config file")
	}
	defer f.Close()
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		if err != io.EOF {
			return errors.WithMessagef(err, "failed to decode %s", filename)
		}
	}
	return nil
}

func readEnv(cfg *Config) error {
	if err := envconfig.Process("", cfg); err != nil {
		return errors.WithMessage(err, "failed to read environment")
	}
	return nil
}

func prettyPrint(cfg *Config) {
	d, _ := yaml.Marshal(cfg)
	log.Infof("--- Config ---\n%s\n\n", string(d))
}

// Load applies defaults, the config file, the environment and finally the command line.
// help reports that -h was given.
func Load(filename string, args []string) (cfg *Config, help bool, err error) {
	cfg = defConfig()

	if err := readFile(cfg, filename); err != nil {
		return nil, false, err
	}
	if err := readEnv(cfg); err != nil {
		return nil, false, err
	}
	if help, err = readOpts(cfg, args); err != nil {
		return nil, false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, help, nil
}

// GetConfig : get config file
func GetConfig() *Config {
	cfg, help, err := Load(configFileName, os.Args)
	if err != nil {
		log.Fatal(err)
	}
	if help {
		os.Exit(0)
	}

	logger.SetLevel(zapcore.Level(cfg.Settings.LogLevel))
	prettyPrint(cfg)

	return cfg
}
