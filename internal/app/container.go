package app

import (
	"context"
	"fmt"

	appconfig "github.com/doeshing/chaincalc/internal/application/config"
	"github.com/doeshing/chaincalc/internal/application/session"
	"github.com/doeshing/chaincalc/internal/domain"
	"github.com/doeshing/chaincalc/internal/infrastructure/config"
	"github.com/doeshing/chaincalc/internal/pkg/logger"
	"github.com/doeshing/chaincalc/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Logger       ports.Logger
	Session      *session.Service
}

// BuildContainer constructs the dependency graph around one
// process-lifetime calculator.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, err
	}

	var log ports.Logger
	if verbose {
		log = logger.NewZap()
	} else {
		log = logger.NewStd(false)
	}

	calc, err := domain.NewCalculator(cfg.Engine.InitialValue)
	if err != nil {
		return nil, fmt.Errorf("engine init: %w", err)
	}

	sess := &session.Service{
		Calc:     calc,
		Settings: config.StaticSettings{Settings: cfg.Display},
		Logger:   log,
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Logger:       log,
		Session:      sess,
	}, nil
}
