package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"findaword/internal/fitness"
	"findaword/internal/ga"
)

// Random re-rolls a strategy every generation
const Random = "random"

// Config is the root configuration structure. A zero seed means the default seed.
type Config struct {
	Seed       int64            `yaml:"seed"`
	Target     string           `yaml:"target" validate:"required"`
	StopMetric string           `yaml:"stop_metric"`
	Population PopulationConfig `yaml:"population"`
	GA         GAConfig         `yaml:"ga"`
	Strategies StrategyConfig   `yaml:"strategies"`
	Params     ParamsConfig     `yaml:"params"`
	Logging    LogConfig        `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// PopulationConfig defines population size and individual length bounds
type PopulationConfig struct {
	Size              int `yaml:"size" validate:"gte=1"`
	MinIndividualSize int `yaml:"min_individual_size" validate:"gte=1"`
	MaxIndividualSize int `yaml:"max_individual_size" validate:"gtefield=MinIndividualSize"`
}

// GAConfig defines generation step parameters. A nil rate takes the default, an
// explicit 0 is kept.
type GAConfig struct {
	ElitismRate    *float64 `yaml:"elitism_rate" validate:"omitempty,gte=0,lte=1"`
	SelectionRate  *float64 `yaml:"selection_rate" validate:"omitempty,gte=0,lte=1"`
	MaxGenerations int      `yaml:"max_generations" validate:"gte=1"`
	Workers        int      `yaml:"workers" validate:"gte=0"`
}

// StrategyConfig names the strategy of each kind, or "random"
type StrategyConfig struct {
	Fitness   string `yaml:"fitness"`
	Selection string `yaml:"selection"`
	Pairing   string `yaml:"pairing"`
	Crossover string `yaml:"crossover"`
	Mutation  string `yaml:"mutation"`
}

// ParamsConfig holds optional strategy parameters; zero means the strategy default
type ParamsConfig struct {
	TournamentSize  int     `yaml:"tournament_size" validate:"gte=0"`
	CrossoverPoints int     `yaml:"crossover_points" validate:"gte=0"`
	MutationRate    float64 `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	SwapRate        float64 `yaml:"swap_rate" validate:"gte=0,lte=1"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" validate:"oneof=auto text json"`
	Every    int    `yaml:"every" validate:"gte=1"`
	CSVPath  string `yaml:"csv_path"`
	JSONPath string `yaml:"json_path"`
	Champion string `yaml:"champion_path"`
}

// MetricsConfig defines where Prometheus metrics are written at the end of a run
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

var validate = validator.New()

// Default returns a config with every default applied
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Apply defaults
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and strategy names
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := fitness.ParseMetric(c.StopMetric); err != nil {
		return fmt.Errorf("invalid config: stop_metric: %w", err)
	}

	// resolving checks every configured strategy name
	if _, err := c.Resolver(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// BreederConfig returns the generation step rates
func (c *Config) BreederConfig() ga.BreederConfig {
	cfg := ga.BreederConfig{
		ElitismRate:   ga.DefaultElitismRate,
		SelectionRate: ga.DefaultSelectionRate,
	}
	if c.GA.ElitismRate != nil {
		cfg.ElitismRate = *c.GA.ElitismRate
	}
	if c.GA.SelectionRate != nil {
		cfg.SelectionRate = *c.GA.SelectionRate
	}
	return cfg
}

// GAParams returns the strategy parameters
func (c *Config) GAParams() ga.Params {
	return ga.Params{
		TournamentSize:  c.Params.TournamentSize,
		CrossoverPoints: c.Params.CrossoverPoints,
		MutationRate:    c.Params.MutationRate,
		SwapRate:        c.Params.SwapRate,
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Target == "" {
		cfg.Target = "Je vais bien, tu vas bien !"
	}
	if cfg.StopMetric == "" {
		cfg.StopMetric = fitness.Hamming.String()
	}
	if cfg.Population.Size == 0 {
		cfg.Population.Size = 1024
	}
	if cfg.Population.MinIndividualSize == 0 {
		cfg.Population.MinIndividualSize = 2
	}
	if cfg.Population.MaxIndividualSize == 0 {
		cfg.Population.MaxIndividualSize = 50
	}
	if cfg.GA.ElitismRate == nil {
		rate := ga.DefaultElitismRate
		cfg.GA.ElitismRate = &rate
	}
	if cfg.GA.SelectionRate == nil {
		rate := ga.DefaultSelectionRate
		cfg.GA.SelectionRate = &rate
	}
	if cfg.GA.MaxGenerations == 0 {
		cfg.GA.MaxGenerations = 200000
	}
	if cfg.Strategies.Fitness == "" {
		cfg.Strategies.Fitness = Random
	}
	if cfg.Strategies.Selection == "" {
		cfg.Strategies.Selection = Random
	}
	if cfg.Strategies.Pairing == "" {
		cfg.Strategies.Pairing = Random
	}
	if cfg.Strategies.Crossover == "" {
		cfg.Strategies.Crossover = Random
	}
	if cfg.Strategies.Mutation == "" {
		cfg.Strategies.Mutation = Random
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "auto"
	}
	if cfg.Logging.Every == 0 {
		cfg.Logging.Every = 100
	}
}
