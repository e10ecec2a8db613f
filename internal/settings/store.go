package settings

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/san-kum/springcam/internal/spring"
)

// Store serializes updates behind a mutex so readers always observe a
// fully merged record.
type Store struct {
	mu       sync.RWMutex
	settings Settings
	logger   *slog.Logger
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSettings starts the store from s instead of the defaults.
func WithSettings(settings Settings) Option {
	return func(s *Store) {
		s.settings = settings
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		settings: Defaults(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) MotionBlur() MotionBlur {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.MotionBlur
}

func (s *Store) CursorAnimation() Animation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.CursorAnimation
}

func (s *Store) ZoomAnimation() Animation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.ZoomAnimation
}

func (s *Store) UpdateMotionBlur(u MotionBlurUpdate) MotionBlur {
	s.mu.Lock()
	defer s.mu.Unlock()

	applyMotionBlur(&s.settings.MotionBlur, u)
	s.logger.Debug("motion blur updated",
		"enabled", s.settings.MotionBlur.Enabled,
		"amount", s.settings.MotionBlur.Amount)
	return s.settings.MotionBlur
}

func (s *Store) UpdateCursorAnimation(u AnimationUpdate) Animation {
	return s.updateAnimation("cursor", &s.settings.CursorAnimation, u)
}

func (s *Store) UpdateZoomAnimation(u AnimationUpdate) Animation {
	return s.updateAnimation("zoom", &s.settings.ZoomAnimation, u)
}

func (s *Store) updateAnimation(target string, a *Animation, u AnimationUpdate) Animation {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := a.Style
	applyAnimationUpdate(a, u)

	if a.Style != before {
		s.logger.Debug("animation style changed", "target", target, "from", before, "to", a.Style)
	}
	if u.Style != nil && !a.Style.IsPreset() && !a.Style.IsCustom() {
		s.logger.LogAttrs(context.Background(), slog.LevelWarn, "unknown animation style kept verbatim",
			slog.String("target", target), slog.String("style", a.Style.String()))
	}
	return *a
}

// CursorEasing binds the current cursor spring for one transition. Later
// updates do not affect an easing already handed out.
func (s *Store) CursorEasing(from, to float64) spring.Easing {
	return spring.NewEasing(from, to, s.CursorAnimation().Config)
}

func (s *Store) ZoomEasing(from, to float64) spring.Easing {
	return spring.NewEasing(from, to, s.ZoomAnimation().Config)
}

// Replace swaps the whole aggregate, for example after loading a file.
func (s *Store) Replace(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *Store) Reset() {
	s.Replace(Defaults())
}
