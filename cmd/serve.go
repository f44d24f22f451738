package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"autocomment.dev/pkg/autocomment/internal/adapter"
	"autocomment.dev/pkg/autocomment/internal/client"
	"autocomment.dev/pkg/autocomment/internal/domain"
	m "autocomment.dev/pkg/autocomment/internal/model"
	"autocomment.dev/pkg/autocomment/internal/server"
)

const (
	roleFlagName = "role"
	roleAll      = "all"
)

var serveRoles = []string{server.RoleCommentor, server.RoleFiles, server.RoleGateway}

const serveLongDescription = `Run the HTTP services.

  commentor  POST /process        annotate a code snippet
  files      POST /save, GET /files store and list annotated files
  gateway    POST /api/process    annotate through commentor, then save through files
             GET  /api/files      list files through files
  all        every role above, each on its own address

Every role serves GET /health and GET /metrics.`

func newServeCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the commentor, files and gateway HTTP services",
		Long:  serveLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roles, err := parseRoles(role)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, roles)
		},
	}

	cmd.Flags().StringVar(&role, roleFlagName, roleAll, "role to run: commentor, files, gateway or all")

	return cmd
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}

func parseRoles(role string) ([]string, error) {
	if role == roleAll {
		return serveRoles, nil
	}

	if slices.Contains(serveRoles, role) {
		return []string{role}, nil
	}

	return nil, fmt.Errorf("unknown role %q (want commentor, files, gateway or all)", role)
}

func serve(ctx context.Context, roles []string) error {
	metrics := server.NewMetrics()
	group, groupCtx := errgroup.WithContext(ctx)

	for _, role := range roles {
		srv, err := newRoleServer(groupCtx, role, metrics)
		if err != nil {
			return err
		}

		group.Go(func() error {
			return srv.Start(groupCtx)
		})
	}

	return group.Wait()
}

func newRoleServer(ctx context.Context, role string, metrics *server.Metrics) (*server.Server, error) {
	cfg := server.Config{
		Role:            role,
		BodyLimit:       viper.GetInt64(bodyLimitKey),
		RateLimit:       viper.GetInt(rateLimitKey),
		RateWindow:      viper.GetDuration(rateWindowKey),
		ShutdownTimeout: viper.GetDuration(shutdownTimeoutKey),
		AllowedOrigins:  viper.GetStringSlice(allowedOriginsKey),
	}

	switch role {
	case server.RoleCommentor:
		cfg.Addr = viper.GetString(commentorAddrKey)
		srv := server.New(cfg, metrics)
		srv.MountCommentor(domain.NewCommentor())

		return srv, nil
	case server.RoleFiles:
		cfg.Addr = viper.GetString(filesAddrKey)
		files := adapter.NewLocalFileManager(adapter.NewLocalSourceFSAdapter(),
			m.Path(viper.GetString(uploadDirKey)),
			m.Path(viper.GetString(commentedDirKey)),
		)

		if err := files.EnsureDirectories(ctx); err != nil {
			return nil, err
		}

		srv := server.New(cfg, metrics)
		srv.MountFiles(files)

		return srv, nil
	case server.RoleGateway:
		cfg.Addr = viper.GetString(gatewayAddrKey)
		srv := server.New(cfg, metrics)
		srv.MountGateway(
			client.NewCommentorClient(viper.GetString(commentorURLKey), nil),
			client.NewFilesClient(viper.GetString(filesURLKey), nil),
		)

		return srv, nil
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
}
