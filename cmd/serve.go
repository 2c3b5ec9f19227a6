package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/render"
	"github.com/Bitlatte/petroweb/internal/server"
	"github.com/Bitlatte/petroweb/internal/site"
)

var (
	serverPort int
	devMode    bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site and reloads content on change",
	Long: `The serve command renders pages on request. It watches the content
and static directories and swaps in the reloaded catalog after every change;
a content error keeps the previous catalog live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			appConfig.Server.Port = serverPort
		}
		if devMode {
			appConfig.Server.Dev = true
		}
		if appConfig.Server.Dev {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}

		cat, err := content.Load(appConfig.ContentDir)
		if err != nil {
			return err
		}
		r, err := render.New()
		if err != nil {
			return err
		}
		srv := server.New(appConfig, r, cat, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return srv.Run(gctx) })
		g.Go(func() error {
			dirs := []string{appConfig.ContentDir, appConfig.StaticDir}
			return site.Watch(gctx, dirs, site.DefaultDebounce, logger, func() {
				reloadCatalog(srv)
			})
		})
		return g.Wait()
	},
}

func reloadCatalog(srv *server.Server) {
	cat, err := content.Load(appConfig.ContentDir)
	if err != nil {
		logger.Error("content reload failed, keeping previous catalog", zap.Error(err))
		return
	}
	srv.Reload(cat)
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Port to serve the site on")
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "disable caching and enable gin debug output")
	rootCmd.AddCommand(serveCmd)
}
