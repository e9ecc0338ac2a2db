package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/alexanderramin/lineup/internal/config"
	"github.com/alexanderramin/lineup/internal/repository"
)

// BoardScaleKey is the settings key of the board scale.
const BoardScaleKey = "board_scale"

type settingsService struct {
	settings     repository.SettingsRepo
	defaultScale float64
}

// NewSettingsService returns a SettingsService that falls back to
// defaultScale until a scale has been stored.
func NewSettingsService(settings repository.SettingsRepo, defaultScale float64) SettingsService {
	return &settingsService{settings: settings, defaultScale: config.RoundScale(defaultScale)}
}

func (s *settingsService) BoardScale(ctx context.Context) (float64, error) {
	raw, err := s.settings.Get(ctx, BoardScaleKey)
	if errors.Is(err, repository.ErrNotFound) {
		return s.defaultScale, nil
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return s.defaultScale, nil
	}
	return config.RoundScale(v), nil
}

func (s *settingsService) SetBoardScale(ctx context.Context, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("board scale must be a number, got %v", v)
	}
	v = config.RoundScale(v)
	if err := s.settings.Set(ctx, BoardScaleKey, strconv.FormatFloat(v, 'f', 1, 64)); err != nil {
		return 0, err
	}
	return v, nil
}
