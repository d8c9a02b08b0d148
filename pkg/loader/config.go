package loader

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jamezpolley/publicwhip/pkg/divisions"
)

// Config holds the loader's run configuration. Values come from a
// YAML file with environment overrides on top.
type Config struct {
	// DataDir is the root of the scraped transcript tree, holding
	// one <house>_debates directory per chamber.
	DataDir string `yaml:"data_dir"`

	// MembersFile is the members XML register used for speaker
	// attribution. Optional; without it literal speaker names are
	// used.
	MembersFile string `yaml:"members_file"`

	// Houses selects the chambers to process. Defaults to both.
	Houses []string `yaml:"houses"`

	// DatabaseURL is the division store connection string. Empty
	// means dry run.
	DatabaseURL string `yaml:"database_url"`
}

// DefaultConfig returns a config covering both chambers with no
// database configured.
func DefaultConfig() *Config {
	return &Config{
		DataDir: "data",
		Houses:  []string{string(divisions.HouseRepresentatives), string(divisions.HouseSenate)},
	}
}

// LoadConfig reads a YAML config file. Fields left empty fall back to
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(config.Houses) == 0 {
		config.Houses = DefaultConfig().Houses
	}
	return config, nil
}

// ApplyEnvironment layers environment variables over the config. A
// .env file is honored when present; a missing one is not an error.
func (c *Config) ApplyEnvironment() {
	_ = godotenv.Load()

	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.DatabaseURL = url
	}
	if dir := os.Getenv("PW_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if path := os.Getenv("PW_MEMBERS_FILE"); path != "" {
		c.MembersFile = path
	}
}

// HouseList validates the configured chamber names.
func (c *Config) HouseList() ([]divisions.House, error) {
	houses := make([]divisions.House, 0, len(c.Houses))
	for _, name := range c.Houses {
		house, err := divisions.ParseHouse(name)
		if err != nil {
			return nil, err
		}
		houses = append(houses, house)
	}
	return houses, nil
}
