package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/render"
	"github.com/Bitlatte/petroweb/internal/site"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site",
	Long: `The build command loads the content catalog (built-in content plus
'./content/'), renders every page with the embedded layouts, copies
'./static/' and writes the site, sitemap.xml, robots.txt and api/posts.json
to the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := content.Load(appConfig.ContentDir)
		if err != nil {
			return err
		}
		r, err := render.New()
		if err != nil {
			return err
		}
		_, err = site.NewBuilder(appConfig, r, logger).Build(cmd.Context(), cat)
		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
