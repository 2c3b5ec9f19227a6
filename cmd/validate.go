package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/petroweb/internal/content"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Checks the content catalog without building",
	Long: `The validate command loads the built-in content and './content/' and
reports every schema or consistency problem: duplicate slugs or ids,
unknown categories or icons, malformed dates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := content.Load(appConfig.ContentDir)
		if err != nil {
			return err
		}
		logger.Info("content is valid",
			zap.Int("posts", cat.Blog.Len()),
			zap.Int("services", len(cat.Services)),
			zap.Int("jobs", len(cat.Jobs)))
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d posts, %d services, %d jobs\n", cat.Blog.Len(), len(cat.Services), len(cat.Jobs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
