package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/light"
	"github.com/lixenwraith/vi-rogue/maze"
)

// ErrInvalidConfig wraps every load and validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Map generators
const (
	GeneratorMaze    = "maze"
	GeneratorScatter = "scatter"
)

// Light blend names
const (
	BlendMax       = "max"
	BlendOverwrite = "overwrite"
)

type Config struct {
	Map   MapConfig   `toml:"map"`
	Game  GameConfig  `toml:"game"`
	Light LightConfig `toml:"light"`
	Audio AudioConfig `toml:"audio"`
	Log   LogConfig   `toml:"log"`
	Keys  KeysConfig  `toml:"keys"`
}

type MapConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Generator string `toml:"generator"`
	Seed      int64  `toml:"seed"` // 0 = random

	// Agent carving
	Agents     int `toml:"agents"`
	Openness   int `toml:"openness"`
	Iterations int `toml:"iterations"`

	// Scatter
	Walls int `toml:"walls"`
	Holes int `toml:"holes"`
}

type GameConfig struct {
	Lives        int           `toml:"lives"`
	Monsters     int           `toml:"monsters"`
	Realtime     bool          `toml:"realtime"`      // advance on a timer as well as on input
	TickInterval time.Duration `toml:"tick_interval"` // realtime step, e.g. "250ms"
}

type LightConfig struct {
	Occlude      bool    `toml:"occlude"`
	Blend        string  `toml:"blend"`
	PlayerRadius float64 `toml:"player_radius"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Debug  bool   `toml:"debug"` // write logs/vi-rogue.log
}

// KeysConfig overrides key bindings with key name → action name pairs
type KeysConfig struct {
	Runes   map[string]string `toml:"runes,omitempty"`   // "a" = "move_left", "space" = "fire"
	Special map[string]string `toml:"special,omitempty"` // "enter" = "wait"
}

// Default returns the built-in configuration
func Default() Config {
	mc := maze.DefaultConfig(constants.MapWidth, constants.MapHeight)
	return Config{
		Map: MapConfig{
			Width:      mc.Width,
			Height:     mc.Height,
			Generator:  GeneratorMaze,
			Agents:     mc.Agents,
			Openness:   mc.Openness,
			Iterations: mc.Iterations,
			Walls:      constants.ScatterWalls,
			Holes:      constants.ScatterHoles,
		},
		Game: GameConfig{
			Lives:        constants.InitialLives,
			Monsters:     constants.MonsterCount,
			TickInterval: constants.AutoTickInterval,
		},
		Light: LightConfig{
			Occlude:      true,
			Blend:        BlendMax,
			PlayerRadius: constants.PlayerLightRadius,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a TOML file over the defaults; keys absent from the file keep their default
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Parse decodes TOML text over the defaults
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(names, ", "))
	}
	return nil
}

// Write encodes the configuration as TOML
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch c.Map.Generator {
	case GeneratorMaze:
		if err := c.MazeConfig().Validate(); err != nil {
			return fmt.Errorf("%w: map: %w", ErrInvalidConfig, err)
		}
	case GeneratorScatter:
		if c.Map.Width < 3 || c.Map.Height < 3 {
			return fmt.Errorf("%w: map: %dx%d too small", ErrInvalidConfig, c.Map.Width, c.Map.Height)
		}
		if c.Map.Walls < 0 || c.Map.Holes < 0 {
			return fmt.Errorf("%w: map: negative scatter counts", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown generator %q", ErrInvalidConfig, c.Map.Generator)
	}

	if c.Game.Lives < 1 {
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Game.Lives)
	}
	if c.Game.Monsters < 0 {
		return fmt.Errorf("%w: monsters must not be negative, got %d", ErrInvalidConfig, c.Game.Monsters)
	}
	if c.Game.Realtime && c.Game.TickInterval <= 0 {
		return fmt.Errorf("%w: realtime needs a positive tick_interval", ErrInvalidConfig)
	}

	if c.Light.Blend != BlendMax && c.Light.Blend != BlendOverwrite {
		return fmt.Errorf("%w: unknown blend %q", ErrInvalidConfig, c.Light.Blend)
	}
	if c.Light.PlayerRadius < 0 {
		return fmt.Errorf("%w: negative light radius", ErrInvalidConfig)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume must be within 0..1, got %v", ErrInvalidConfig, c.Audio.Volume)
	}

	if _, err := input.LoadKeyConfig(c.Keys.Runes, c.Keys.Special); err != nil {
		return fmt.Errorf("%w: keys: %w", ErrInvalidConfig, err)
	}
	return nil
}

// MazeConfig converts the map section for the agent carver
func (c Config) MazeConfig() maze.Config {
	return maze.Config{
		Width:      c.Map.Width,
		Height:     c.Map.Height,
		Agents:     c.Map.Agents,
		Openness:   c.Map.Openness,
		Iterations: c.Map.Iterations,
		Seed:       c.Map.Seed,
	}
}

// ScatterConfig converts the map section for the scatter generator
func (c Config) ScatterConfig() maze.ScatterConfig {
	return maze.ScatterConfig{
		Width:  c.Map.Width,
		Height: c.Map.Height,
		Walls:  c.Map.Walls,
		Holes:  c.Map.Holes,
	}
}

// LightOptions converts the light section
func (c Config) LightOptions() light.Options {
	opts := light.Options{Occlude: c.Light.Occlude, Blend: light.Max}
	if c.Light.Blend == BlendOverwrite {
		opts.Blend = light.Overwrite
	}
	return opts
}

// AudioConfig converts the audio section
func (c Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	return ac
}

// KeyTable returns the default bindings with the keys section applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys.Runes, c.Keys.Special)
	if err != nil {
		return nil, fmt.Errorf("%w: keys: %w", ErrInvalidConfig, err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
