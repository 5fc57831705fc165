package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

const envPrefix = "PAGESIM"

// envVars are defaults read from the environment (and an optional .env file).
// Explicit flags always win.
type envVars struct {
	LogLevel   string `split_words:"true"`
	TraceLevel string `split_words:"true"`
	TraceOut   string `split_words:"true"`
}

func loadEnv() (envVars, error) {
	var env envVars

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return envVars{}, fmt.Errorf("loading .env: %w", err)
	}

	if err := envconfig.Process(envPrefix, &env); err != nil {
		return envVars{}, fmt.Errorf("processing %s_* environment: %w", envPrefix, err)
	}

	return env, nil
}

// applyEnv fills every option whose flag was not set on the command line.
func applyEnv(cmd *cobra.Command, opts *options) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	if env.LogLevel != "" && !cmd.Flags().Changed("log") {
		opts.logLevel = env.LogLevel
	}
	if env.TraceLevel != "" && !cmd.Flags().Changed("trace") {
		opts.traceLevel = env.TraceLevel
	}
	if env.TraceOut != "" && !cmd.Flags().Changed("trace-out") {
		opts.traceOut = env.TraceOut
	}

	return nil
}
