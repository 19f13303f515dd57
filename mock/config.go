package mock

import (
	"context"

	webrag "github.com/GH05TCREW/WebRAG"
)

var _ webrag.ConfigService = (*ConfigService)(nil)

// ConfigService is a mock implementation of webrag.ConfigService.
type ConfigService struct {
	LoadFn func(ctx context.Context) (webrag.Config, error)
	SaveFn func(ctx context.Context, cfg webrag.Config) error
	SetFn  func(ctx context.Context, key, value string) (webrag.Config, error)
}

func (s *ConfigService) Load(ctx context.Context) (webrag.Config, error) {
	return s.LoadFn(ctx)
}

func (s *ConfigService) Save(ctx context.Context, cfg webrag.Config) error {
	return s.SaveFn(ctx, cfg)
}

func (s *ConfigService) Set(ctx context.Context, key, value string) (webrag.Config, error) {
	return s.SetFn(ctx, key, value)
}
