// Package config loads the configuration of the pit binary from defaults, a config file,
// DOBUTSU_* environment variables and command line flags, in increasing order of precedence.
package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "DOBUTSU"

type Config struct {
	Games    int    `mapstructure:"games"`
	PlyLimit int    `mapstructure:"ply_limit"`
	Seed     uint64 `mapstructure:"seed"`
	PlayerA  string `mapstructure:"player_a"`
	PlayerB  string `mapstructure:"player_b"`
	LogLevel string `mapstructure:"log_level"`

	GifPath       string `mapstructure:"gif_path"`
	ExamplesPath  string `mapstructure:"examples_path"`
	StatsPath     string `mapstructure:"stats_path"`
	WebsocketAddr string `mapstructure:"websocket_addr"`
}

type option struct {
	key, flag string
	def       interface{}
	usage     string
}

var options = []option{
	{"games", "games", 10, "number of games to play"},
	{"ply_limit", "ply-limit", 100, "plies after which a game is a draw"},
	{"seed", "seed", uint64(0), "random seed. 0 uses the clock"},
	{"player_a", "a", "minimax:3", "first agent: random, greedy, minimax:<depth> or alphabeta:<depth>"},
	{"player_b", "b", "random", "second agent"},
	{"log_level", "log-level", "info", "log level"},
	{"gif_path", "gif", "", "write the games to this GIF"},
	{"examples_path", "examples", "", "record examples to this parquet file"},
	{"stats_path", "stats", "", "dump win rates to this CSV file"},
	{"websocket_addr", "ws", "", "stream moves over a websocket served at this address"},
}

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pit", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file")
	for _, o := range options {
		switch d := o.def.(type) {
		case int:
			fs.Int(o.flag, d, o.usage)
		case uint64:
			fs.Uint64(o.flag, d, o.usage)
		case string:
			fs.String(o.flag, d, o.usage)
		}
	}
	return fs
}

// Load merges the configuration. path may be empty. flags may be nil, otherwise it must have been
// created by Flags.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for _, o := range options {
		v.SetDefault(o.key, o.def)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config %q", path)
		}
	}
	if flags != nil {
		for _, o := range options {
			if f := flags.Lookup(o.flag); f != nil {
				if err := v.BindPFlag(o.key, f); err != nil {
					return nil, errors.WithStack(err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration can be used to play.
func (c *Config) Validate() error {
	if c.Games < 1 {
		return errors.Errorf("games must be positive. Got %d", c.Games)
	}
	if c.PlyLimit < 1 {
		return errors.Errorf("ply limit must be positive. Got %d", c.PlyLimit)
	}
	if _, err := ParsePlayer(c.PlayerA); err != nil {
		return errors.WithMessage(err, "player a")
	}
	if _, err := ParsePlayer(c.PlayerB); err != nil {
		return errors.WithMessage(err, "player b")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level named by LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "bad log level %q", c.LogLevel)
	}
	return lvl, nil
}

// Kinds of players.
const (
	Random    = "random"
	Greedy    = "greedy"
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
)

// PlayerSpec describes a search player, as in "minimax:3".
type PlayerSpec struct {
	Kind  string
	Depth int // only used by minimax and alphabeta
}

func (p PlayerSpec) String() string {
	if p.Kind == Minimax || p.Kind == AlphaBeta {
		return p.Kind + ":" + strconv.Itoa(p.Depth)
	}
	return p.Kind
}

// ParsePlayer parses a player description.
func ParsePlayer(s string) (PlayerSpec, error) {
	kind, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	switch kind {
	case Random, Greedy:
		if hasArg {
			return PlayerSpec{}, errors.Errorf("%s takes no depth: %q", kind, s)
		}
		return PlayerSpec{Kind: kind}, nil
	case Minimax, AlphaBeta:
		if !hasArg {
			return PlayerSpec{}, errors.Errorf("%s needs a depth, as in %s:3", kind, kind)
		}
		depth, err := strconv.Atoi(arg)
		if err != nil || depth < 1 {
			return PlayerSpec{}, errors.Errorf("bad depth in %q", s)
		}
		return PlayerSpec{Kind: kind, Depth: depth}, nil
	}
	return PlayerSpec{}, errors.Errorf("unknown player %q", s)
}
