package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	casefiles "github.com/AndreyAkinshin/numdelta/internal/cases"
	"github.com/AndreyAkinshin/numdelta/internal/config"
	"github.com/AndreyAkinshin/numdelta/internal/errors"
	"github.com/AndreyAkinshin/numdelta/internal/schema"
	"github.com/AndreyAkinshin/numdelta/pkg/tap"
)

// cmdRun loads the configuration, runs case files, and emits TAP output plus
// a summary. Exit code 0 means every assertion passed and the plan (if any)
// was satisfied.
func cmdRun(args []string, opts *GlobalOptions) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	tol, err := cfg.ResolveTolerance()
	if err != nil {
		out.ErrorPrefix("invalid tolerance configuration: %v", err)
		return errors.ExitConfigError
	}

	files := args
	if len(files) == 0 {
		files, err = casefiles.Discover(cfg.Cases.Directory, cfg.Cases.Pattern)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitRuntimeError
		}
	}
	if len(files) == 0 {
		out.ErrorPrefix("no case files found in %s (pattern %q)", cfg.Cases.Directory, cfg.Cases.Pattern)
		return errors.ExitRuntimeError
	}

	var reporter *tap.Writer
	if cfg.Plan > 0 {
		reporter = tap.NewWithPlan(out.Out(), cfg.Plan)
	} else {
		reporter = tap.New(out.Out())
	}

	runner := casefiles.NewRunner(tol, reporter)
	var results []casefiles.FileResult
	for _, file := range files {
		result, err := runner.RunFile(file)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
		results = append(results, result)
	}

	planErr := reporter.Done()

	printSummary(results, reporter.Counts(), planErr)

	if planErr != nil || reporter.Counts().Failed > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// cmdValidate schema-validates configuration and case files.
// Files named like the default config are checked against the config schema;
// everything else is treated as a case file.
func cmdValidate(args []string) int {
	if len(args) == 0 {
		out.ErrorPrefix("validate requires at least one file")
		return errors.ExitConfigError
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitRuntimeError
		}

		if filepath.Base(path) == config.DefaultFileName {
			err = schema.ValidateConfig(data)
			if err == nil {
				cfg, parseErr := config.Parse(data)
				if parseErr != nil {
					err = parseErr
				} else {
					err = config.Validate(cfg)
				}
			}
		} else {
			err = schema.ValidateCases(data, casefiles.IsYAML(path))
		}

		if err != nil {
			out.ErrorPrefix("%s: %v", path, err)
			return errors.ExitConfigError
		}
		out.ValidationSuccess("%s is valid", path)
	}

	return errors.ExitSuccess
}

// loadConfig loads the configuration named by --config, falling back to
// numdelta.json in the working directory, falling back to built-in defaults.
func loadConfig(opts *GlobalOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.LoadAndValidate(opts.ConfigPath)
	}
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return config.LoadAndValidate(config.DefaultFileName)
	}
	return config.Default(), nil
}

// printSummary prints the per-suite and aggregate results after the TAP
// stream.
func printSummary(results []casefiles.FileResult, counts tap.Counts, planErr error) {
	out.SummaryHeader("Summary")

	titleCase := cases.Title(language.English)
	for _, r := range results {
		status := fmt.Sprintf("%d/%d passed", r.Passed, r.Total())
		if r.Failed > 0 {
			out.SummaryFailed(titleCase.String(r.Suite), status)
		} else {
			out.SummaryPassed(titleCase.String(r.Suite), status)
		}
	}

	out.SummaryItem("Total", fmt.Sprintf("%d", counts.Total))
	out.SummaryItem("Passed", fmt.Sprintf("%d", counts.Passed))
	out.SummaryItem("Failed", fmt.Sprintf("%d", counts.Failed))

	switch {
	case planErr != nil:
		out.FinalFailure("Plan not satisfied: %v", planErr)
	case counts.Failed > 0:
		out.FinalFailure("%d of %d assertions failed", counts.Failed, counts.Total)
	default:
		out.FinalSuccess("All %d assertions passed", counts.Total)
	}
}
