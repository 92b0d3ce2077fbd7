package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/branding"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/config"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/errors"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/exec"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/logger"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/platform"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/setup"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	overleafID   string
	commitFlag   bool
	templateFlag string
	hostFlag     string
	remoteFlag   string
	debugFlag    bool
	noColorFlag  bool
)

// newRunner is swapped in tests.
var newRunner = func() exec.CommandRunner { return exec.NewRealRunner() }

func init() {
	rootCmd.Flags().StringVar(&overleafID, "overleaf-id", "", "Overleaf project ID to show in the setup instructions")
	rootCmd.Flags().BoolVar(&commitFlag, "commit", false, "Commit and push the workflow file")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&templateFlag, "template", "", "Workflow template to install (env "+branding.EnvVar("template")+"; default: "+branding.TemplateFile()+" next to the executable)")
	pf.StringVar(&hostFlag, "host", "", "Hosting domain remotes are matched against (default: github.com)")
	pf.StringVar(&remoteFlag, "remote", "", "Remote used to find the repository owner and name (default: origin)")
	pf.BoolVar(&debugFlag, "debug", false, "Print each git invocation")
	pf.BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	bindFlags()

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.EUsage, "invalid arguments (see --help)", err)
	})
}

// bindFlags lets the command line override config file and environment
// values for the same keys.
func bindFlags() {
	pf := rootCmd.PersistentFlags()
	_ = viper.BindPFlag(config.KeyOverleafID, rootCmd.Flags().Lookup("overleaf-id"))
	_ = viper.BindPFlag(config.KeyTemplate, pf.Lookup("template"))
	_ = viper.BindPFlag(config.KeyHost, pf.Lookup("host"))
	_ = viper.BindPFlag(config.KeyRemote, pf.Lookup("remote"))
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <repo-path>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs a GitHub Actions workflow into a git repository that
pushes commits to Overleaf, pulls Overleaf changes every hour and can be run
by hand from the Actions tab. It then prints the secrets the workflow needs.

Pass --commit to stage, commit and push the workflow file in one step.

A repository in the current directory named like a subcommand (version,
config, doctor, help) is set up rather than run as that subcommand.`,
	Example: "  " + branding.CLIName() + " ./thesis --overleaf-id 64f0c0ffee --commit",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New(errors.EUsage, fmt.Sprintf("expected exactly one repository path, got %d arguments", len(args)))
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColorFlag {
			logger.DisableColor()
		}
		if err := config.Load(); err != nil {
			return errors.Wrap(errors.EConfig, "loading configuration", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(cmd.OutOrStdout(), debugFlag)
		s := setup.New(newRunner(), log)

		_, err := s.Run(cmd.Context(), setup.Options{
			RepoPath:     args[0],
			OverleafID:   config.OverleafID(),
			Commit:       commitFlag,
			TemplatePath: config.Template(),
			Host:         config.Host(),
			RemoteName:   config.Remote(),
		})
		return err
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return run(os.Args[1:])
}

func run(args []string) error {
	rootCmd.SetArgs(repoArgs(args))
	return rootCmd.Execute()
}

// repoArgs rewrites the first positional argument to an explicit ./path when
// it names a subcommand and a git repository exists under that name, so the
// repository wins over the subcommand.
func repoArgs(args []string) []string {
	out := append([]string{}, args...)
	for i := 0; i < len(out); i++ {
		arg := out[i]
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "-") {
			if !strings.Contains(arg, "=") && takesValue(arg) {
				i++
			}
			continue
		}
		if isSubcommand(arg) && platform.Exists(filepath.Join(arg, ".git")) {
			out[i] = "." + string(filepath.Separator) + arg
		}
		break
	}
	return out
}

// takesValue reports whether a root flag consumes the following argument.
func takesValue(arg string) bool {
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = rootCmd.Flags().Lookup(name)
		if f == nil {
			f = rootCmd.PersistentFlags().Lookup(name)
		}
	} else if short := strings.TrimPrefix(arg, "-"); len(short) == 1 {
		f = rootCmd.Flags().ShorthandLookup(short)
	}
	return f != nil && f.NoOptDefVal == ""
}

// isSubcommand includes help and completion, which cobra adds lazily.
func isSubcommand(name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
