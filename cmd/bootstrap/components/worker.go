package components

import (
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cmds commands.SweepCommands, cfg config.Config) *worker.Sweeper {
			return worker.NewSweeper(cmds, cfg.Sweeper.Grace(), cfg.Sweeper.Interval)
		},
	),
	fx.Invoke(RegisterSweeper),
)

// RegisterSweeper ties the sweeper to the app lifecycle unless disabled.
func RegisterSweeper(lc fx.Lifecycle, cfg config.Config, s *worker.Sweeper) {
	if !cfg.Sweeper.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})
}
