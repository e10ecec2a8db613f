package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springcam/internal/canvas"
	"github.com/san-kum/springcam/internal/preset"
	"github.com/san-kum/springcam/internal/settings"
)

const (
	DefaultFPS         = 60
	DefaultPreviewFrom = 1.0
	DefaultPreviewTo   = 2.0
)

type Config struct {
	MotionBlur settings.MotionBlur `yaml:"motion_blur"`
	Cursor     AnimationConfig     `yaml:"cursor"`
	Zoom       AnimationConfig     `yaml:"zoom"`
	Canvas     CanvasConfig        `yaml:"canvas"`
	Preview    PreviewConfig       `yaml:"preview"`
}

// AnimationConfig is replayed through the store as a single update, so a
// style plus explicit numbers means "this preset, with these overrides"
// and numbers without a style mean custom.
type AnimationConfig struct {
	Style              string   `yaml:"style,omitempty"`
	Mass               *float64 `yaml:"mass,omitempty"`
	Tension            *float64 `yaml:"tension,omitempty"`
	Friction           *float64 `yaml:"friction,omitempty"`
	TransitionDuration *float64 `yaml:"transition_duration,omitempty"`
}

type CanvasConfig struct {
	Screen      string `yaml:"screen,omitempty"`
	AspectRatio string `yaml:"aspect_ratio"`
}

type PreviewConfig struct {
	FPS  int     `yaml:"fps"`
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// DefaultConfig leaves the animation sections empty: an empty section is
// an empty update and keeps whatever the store already holds.
func DefaultConfig() *Config {
	return &Config{
		MotionBlur: settings.DefaultMotionBlur(),
		Canvas:     CanvasConfig{AspectRatio: string(canvas.Landscape)},
		Preview: PreviewConfig{
			FPS:  DefaultFPS,
			From: DefaultPreviewFrom,
			To:   DefaultPreviewTo,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FromSettings captures s so that applying the result to a fresh store
// reproduces it exactly.
func FromSettings(s settings.Settings) *Config {
	cfg := DefaultConfig()
	cfg.MotionBlur = s.MotionBlur
	cfg.Cursor = animationConfig(s.CursorAnimation)
	cfg.Zoom = animationConfig(s.ZoomAnimation)
	return cfg
}

func animationConfig(a settings.Animation) AnimationConfig {
	return AnimationConfig{
		Style:              string(a.Style),
		Mass:               settings.Float(a.Mass),
		Tension:            settings.Float(a.Tension),
		Friction:           settings.Float(a.Friction),
		TransitionDuration: settings.Float(a.TransitionDuration),
	}
}

// Update converts the section into a store update. Styles are checked here,
// so a typo in a file is an error rather than a silently unknown style.
func (a AnimationConfig) Update() (settings.AnimationUpdate, error) {
	u := settings.AnimationUpdate{
		Mass:               a.Mass,
		Tension:            a.Tension,
		Friction:           a.Friction,
		TransitionDuration: a.TransitionDuration,
	}
	if a.Style != "" {
		style, err := preset.ParseStyle(a.Style)
		if err != nil {
			return settings.AnimationUpdate{}, err
		}
		u.Style = &style
	}
	return u, nil
}

// Apply replays the file's settings through the store. Nothing is applied
// if any section is invalid.
func (c *Config) Apply(store *settings.Store) error {
	cursor, err := c.Cursor.Update()
	if err != nil {
		return fmt.Errorf("cursor: %w", err)
	}
	zoom, err := c.Zoom.Update()
	if err != nil {
		return fmt.Errorf("zoom: %w", err)
	}

	mb := c.MotionBlur
	next := settings.NewStore(settings.WithSettings(store.Snapshot()))
	next.UpdateMotionBlur(settings.MotionBlurUpdate{
		Enabled: &mb.Enabled,
		Amount:  &mb.Amount,
		Cursor:  &mb.Cursor,
		Zoom:    &mb.Zoom,
		Pan:     &mb.Pan,
	})
	next.UpdateCursorAnimation(cursor)
	next.UpdateZoomAnimation(zoom)

	result := next.Snapshot()
	if err := result.Validate(); err != nil {
		return err
	}
	store.Replace(result)
	return nil
}

// Frame builds the canvas frame described by the canvas section.
func (c *Config) Frame() (*canvas.Frame, error) {
	f := canvas.NewFrame()
	if c.Canvas.Screen != "" {
		screen, err := canvas.ParseSize(c.Canvas.Screen)
		if err != nil {
			return nil, err
		}
		if err := f.SetScreenSize(&screen); err != nil {
			return nil, err
		}
	}
	if err := f.SetAspectRatio(canvas.AspectRatio(c.Canvas.AspectRatio)); err != nil {
		return nil, err
	}
	return f, nil
}
