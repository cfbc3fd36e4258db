package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	gitlab "github.com/aviz92/gitlab-plus"
	"github.com/aviz92/gitlab-plus/errors"
	"github.com/aviz92/gitlab-plus/providers/cli"
	"github.com/aviz92/gitlab-plus/providers/sdk"
)

// version is stamped at build time via -ldflags.
var version = "dev"

const envPrefix = "GITLAB"

const (
	backendSDK = "sdk"
	backendCLI = "cli"
)

// config holds the resolved CLI configuration. Values come from flags first,
// then GITLAB_* environment variables, then flag defaults.
type config struct {
	URL       string `mapstructure:"url"`
	Token     string `mapstructure:"token"`
	Project   string `mapstructure:"project"`
	Backend   string `mapstructure:"backend"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// app wires the cobra command tree, configuration, and logger together.
type app struct {
	root   *cobra.Command
	cfg    config
	logger *zap.Logger
}

func newApp() *app {
	a := &app{}

	a.root = &cobra.Command{
		Use:   "gitlab-plus",
		Short: "Interact with GitLab projects, branches, tags, and merge requests",
		Long: "gitlab-plus wraps a handful of GitLab release operations. It talks to\n" +
			"GitLab either through the official API client (backend \"sdk\") or through\n" +
			"an installed glab CLI (backend \"cli\").",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	flags := a.root.PersistentFlags()
	flags.String("url", "", "GitLab base URL, e.g. https://gitlab.example.com (defaults to gitlab.com)")
	flags.String("token", "", "personal access token (falls back to GITLAB_ACCESS_TOKEN)")
	flags.StringP("project", "p", "", "project ID or full path, e.g. group/project")
	flags.String("backend", backendSDK, "GitLab backend: sdk or cli")
	flags.String("log-level", "info", "log level: debug, info, warn, or error")
	flags.String("log-format", "console", "log encoding: console or json")

	a.root.AddCommand(
		newProjectCommand(a),
		newFileCommand(a),
		newBranchCommand(a),
		newTagCommand(a),
		newMergeRequestCommand(a),
	)

	return a
}

// Execute runs the command tree, cancelling in-flight operations on SIGINT
// or SIGTERM, and flushes the logger before returning.
func (a *app) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := a.root.ExecuteContext(ctx)
	a.flushLogger()
	return err
}

// init resolves configuration and builds the logger. It runs before every
// subcommand.
func (a *app) init() error {
	// A .env in the working directory feeds the environment lookups below.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, a.root.PersistentFlags()); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "failed to bind flags")
	}

	if err := v.Unmarshal(&a.cfg); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse configuration")
	}

	logger, err := newLogger(a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

// connect builds the configured provider and verifies it can reach the
// configured project.
func (a *app) connect(ctx context.Context) (*gitlab.Client, error) {
	if a.cfg.Project == "" {
		err := errors.New(errors.CodeInvalidInput, "no project configured")
		return nil, errors.WithContext(err, "hint", "set --project or GITLAB_PROJECT")
	}

	provider, err := a.buildProvider()
	if err != nil {
		return nil, err
	}

	return gitlab.Connect(ctx, provider, a.cfg.Project, gitlab.WithLogger(a.logger))
}

// buildProvider selects the GitLab backend.
func (a *app) buildProvider() (gitlab.Provider, error) {
	switch a.cfg.Backend {
	case backendSDK:
		var opts []sdk.Option
		if a.cfg.Token != "" {
			opts = append(opts, sdk.WithToken(a.cfg.Token))
		}
		if a.cfg.URL != "" {
			opts = append(opts, sdk.WithBaseURL(a.cfg.URL))
		}
		return sdk.NewSDKProvider(opts...)
	case backendCLI:
		return cli.NewCLIProvider()
	default:
		err := errors.Newf(errors.CodeInvalidConfig, "unknown backend %q", a.cfg.Backend)
		return nil, errors.WithContext(err, "hint", "valid backends are sdk and cli")
	}
}

func (a *app) flushLogger() {
	if a.logger == nil {
		return
	}

	// Sync fails on terminals with ENOTSUP or EINVAL; both are harmless here.
	err := a.logger.Sync()
	if err == nil || errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.EINVAL) {
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

// bindFlags registers every persistent flag under its configuration key so
// values resolve flag first, then environment, then flag default.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(flag *pflag.Flag) {
		key := strings.ReplaceAll(flag.Name, "-", "_")
		if err := v.BindPFlag(key, flag); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	return bindErr
}

// newLogger builds a zap logger honoring the configured level and encoding.
func newLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "unsupported log level")
		return nil, errors.WithContext(wrapped, "log_level", level)
	}

	switch format {
	case "console", "json":
	default:
		err := errors.Newf(errors.CodeInvalidConfig, "unsupported log format %q", format)
		return nil, errors.WithContext(err, "hint", "valid formats are console and json")
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.Encoding = format
	if format == "console" {
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	return cfg.Build()
}
