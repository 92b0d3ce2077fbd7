package cli

import (
	"github.com/overleaf-sync/setup-overleaf-sync/internal/config"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/errors"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/logger"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/setup"
	"github.com/spf13/cobra"
)

var doctorRepo string

func init() {
	doctorCmd.Flags().StringVar(&doctorRepo, "repo", "", "Also check a target repository (read-only)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check git, the workflow template and optionally a target repository",
	Long: `Run read-only diagnostics: git is installed and recent enough, the workflow
template can be found and passes schema validation, and, with --repo, the target
is a git repository whose remote yields an owner and repository name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(cmd.OutOrStdout(), debugFlag)
		s := setup.New(newRunner(), log)

		checks := s.Diagnose(cmd.Context(), setup.Options{
			RepoPath:     doctorRepo,
			TemplatePath: config.Template(),
			Host:         config.Host(),
			RemoteName:   config.Remote(),
		})

		for _, c := range checks {
			if c.OK {
				log.Success("%s: %s", c.Name, c.Detail)
			} else {
				log.Error("✗ %s: %s", c.Name, c.Detail)
			}
		}

		if !setup.Healthy(checks) {
			return errors.New(errors.EInternal, "doctor found problems")
		}
		return nil
	},
}
