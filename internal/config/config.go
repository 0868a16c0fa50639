package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

var ErrHumanSeat = errors.New("headless session needs both seats to be AI-controlled")

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Seed     int64   `yaml:"seed"`
	Redis    Redis   `yaml:"redis"`
	Session  Session `yaml:"session"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host" env-default:"localhost"`
	Port    string `yaml:"port" env-default:"6379"`
}

type Session struct {
	Black          Seat          `yaml:"black"`
	White          Seat          `yaml:"white"`
	Pacing         time.Duration `yaml:"pacing" env-default:"100ms"`
	PauseAtWin     bool          `yaml:"pause-at-win"`
	AutoRestart    bool          `yaml:"auto-restart"`
	TakeStatistics bool          `yaml:"take-statistics"`
	MaxGames       int           `yaml:"max-games" env-default:"10"`
}

type Seat struct {
	AI       bool   `yaml:"ai"`
	Strategy string `yaml:"strategy" env-default:"negamax-alpha-beta"`
	Depth    int    `yaml:"depth" env-default:"4"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that Seat) ToEntity() (entity.Seat, error) {
	if !that.AI {
		return entity.HumanSeat(), nil
	}

	strategy, err := entity.ParseStrategy(that.Strategy, that.Depth)
	if err != nil {
		return entity.Seat{}, fmt.Errorf("invalid seat strategy: %w", err)
	}

	return entity.AISeat(strategy), nil
}

// Seats converts both seats; a headless session cannot take input, so both must be AI.
func (that Session) Seats() (entity.Seat, entity.Seat, error) {
	black, err := that.Black.ToEntity()
	if err != nil {
		return entity.Seat{}, entity.Seat{}, fmt.Errorf("black: %w", err)
	}

	white, err := that.White.ToEntity()
	if err != nil {
		return entity.Seat{}, entity.Seat{}, fmt.Errorf("white: %w", err)
	}

	if !black.AI || !white.AI {
		return entity.Seat{}, entity.Seat{}, ErrHumanSeat
	}

	return black, white, nil
}
