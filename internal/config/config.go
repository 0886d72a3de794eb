package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "planner"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "planner.db"
	DefaultLogLevel       = "info"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Prev    string `toml:"prev"`
	Next    string `toml:"next"`
	First   string `toml:"first"`
	Last    string `toml:"last"`
	Toggle  string `toml:"toggle"`
	Edit    string `toml:"edit"`
	Menu    string `toml:"menu"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
}

type Config struct {
	DBPath      string `toml:"db_path"`
	ContentPath string `toml:"content_path"`
	LogPath     string `toml:"log_path"`
	LogLevel    string `toml:"log_level"`
	Keys        Keymap `toml:"keys"`
}

// ResolveConfigPath returns the per-user config file location, falling back
// to the working directory when no user config dir is known.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// LoadOrCreate reads path, writing the defaults there first if it does not
// exist. Relative paths inside the file are resolved against its directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.resolve(filepath.Dir(path)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.Keys = cfg.Keys.withDefaults(defaultKeymap())
	return cfg.resolve(filepath.Dir(path)), nil
}

func (c Config) resolve(base string) Config {
	c.DBPath = resolvePath(base, c.DBPath)
	c.ContentPath = resolvePath(base, c.ContentPath)
	c.LogPath = resolvePath(base, c.LogPath)
	return c
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (k Keymap) withDefaults(d Keymap) Keymap {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Keymap{
		Quit:    pick(k.Quit, d.Quit),
		Prev:    pick(k.Prev, d.Prev),
		Next:    pick(k.Next, d.Next),
		First:   pick(k.First, d.First),
		Last:    pick(k.Last, d.Last),
		Toggle:  pick(k.Toggle, d.Toggle),
		Edit:    pick(k.Edit, d.Edit),
		Menu:    pick(k.Menu, d.Menu),
		Up:      pick(k.Up, d.Up),
		Down:    pick(k.Down, d.Down),
		Confirm: pick(k.Confirm, d.Confirm),
		Cancel:  pick(k.Cancel, d.Cancel),
	}
}

func defaultConfig() Config {
	return Config{
		DBPath:   DefaultDBName,
		LogLevel: DefaultLogLevel,
		Keys:     defaultKeymap(),
	}
}

func defaultKeymap() Keymap {
	return Keymap{
		Quit:    "q",
		Prev:    "h",
		Next:    "l",
		First:   "g",
		Last:    "G",
		Toggle:  " ",
		Edit:    "e",
		Menu:    "m",
		Up:      "k",
		Down:    "j",
		Confirm: "enter",
		Cancel:  "esc",
	}
}

// Default returns the built-in configuration, resolved against base.
func Default(base string) Config {
	return defaultConfig().resolve(base)
}
