package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"spawn-scheduler/internal/platform/config"
	"spawn-scheduler/internal/platform/logger"
	"spawn-scheduler/internal/spawn"

	"github.com/spf13/cobra"
)

type options struct {
	planFile  string
	planName  string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "spawngen",
		Short: "Generate enemy spawn marker text from stage and wave plans",
		Long: "spawngen prints the spawn marker text for a plan file, or for the\n" +
			"built-in kudzu example when no plan file is given.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			return runGenerate(cmd.OutOrStdout(), log, opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.logLevel, "log-level", config.GetEnv("LOG_LEVEL", "warn"), "log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", config.GetEnv("LOG_FORMAT", "text"), "log format: text or json")

	cmd.Flags().StringVarP(&opts.planFile, "plan", "p", config.GetEnv("SPAWN_PLAN_FILE", ""), "YAML plan file")
	cmd.Flags().StringVarP(&opts.planName, "name", "n", "", "only generate the plan with this name")

	cmd.AddCommand(newParseCmd(opts))
	return cmd
}

func runGenerate(out io.Writer, log *slog.Logger, opts *options) error {
	if opts.planFile == "" {
		if opts.planName != "" {
			return errors.New("--name requires --plan")
		}
		text, err := generate(log, spawn.ExamplePlan())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	}

	pf, err := spawn.LoadPlans(opts.planFile)
	if err != nil {
		return err
	}
	log.Debug("plan file loaded", "path", opts.planFile, "plans", len(pf.Plans))

	if opts.planName != "" {
		p, err := pf.Find(opts.planName)
		if err != nil {
			return err
		}
		text, err := generate(log, p)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	}

	// Every plan must generate before anything is written.
	lines := make([]string, 0, len(pf.Plans))
	for _, p := range pf.Plans {
		text, err := generate(log, p)
		if err != nil {
			return fmt.Errorf("plan %q: %w", p.Name, err)
		}
		lines = append(lines, p.Name+": "+text)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func generate(log *slog.Logger, p spawn.Plan) (string, error) {
	if err := p.Validate(); errors.Is(err, spawn.ErrStageCountMismatch) {
		log.Warn("stage counts differ, unpaired stages ignored",
			"plan", p.Name,
			"stages", len(p.Stages),
			"wave_distributions", len(p.Waves))
	}

	text, err := spawn.GenerateSchedule(p.Enemy, p.Stages, p.Waves, p.WaveGap, p.EnemyDelay, p.FirstWaveTime)
	if err != nil {
		return "", err
	}
	log.Info("schedule generated", "plan", p.Name, "enemy", p.Enemy)
	return text, nil
}

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [marker-text]",
		Short: "Summarize marker text per stage; reads stdin when no text is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(b)
			}

			events, err := spawn.ParseSchedule(strings.TrimSpace(text))
			if err != nil {
				return err
			}
			logger.New(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat).
				Debug("marker text parsed", "events", len(events))

			out := cmd.OutOrStdout()
			for _, s := range spawn.Summarize(events) {
				if _, err := fmt.Fprintf(out, "stage %d: %d enemies, first %.2f, last %.2f\n",
					s.Stage, s.Enemies, s.FirstSpawn, s.LastSpawn); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
