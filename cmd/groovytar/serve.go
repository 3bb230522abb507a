// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/tunabay/go-infounit"
)

type serveFlags struct {
	listen     string
	root       string
	maxFiles   uint64
	maxSizeMB  uint64
	maxAge     time.Duration
	gcInterval time.Duration
	statusLog  time.Duration
	example    bool
}

func newServeCmd(gf *globalFlags) *cobra.Command {
	sf := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve avatars over HTTP",
		Long: `Serve avatars over HTTP. The last segment of the request path is the hash,
the query parameters s, d and r select the size, the style and the rating.
Rendered documents are cached under <root>/generated/<style>/.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return sf.run(ctx, gf.newLogger(cmd.ErrOrStderr()))
		},
	}
	cmd.Flags().StringVarP(&sf.listen, "listen", "l", ":8080", "Address to listen on, [host]:port")
	cmd.Flags().StringVar(&sf.root, "root", ".", "Root directory, documents are cached in its generated subdirectory")
	cmd.Flags().Uint64Var(&sf.maxFiles, "max-files", 0, "Maximum number of cached files, 0 for unlimited")
	cmd.Flags().Uint64Var(&sf.maxSizeMB, "max-size-mb", 0, "Maximum total size of cached files in megabytes, 0 for unlimited")
	cmd.Flags().DurationVar(&sf.maxAge, "max-age", 0, "Remove cached files older than this, 0 to keep them")
	cmd.Flags().DurationVar(&sf.gcInterval, "gc-interval", time.Minute, "Interval of the cache expiration process")
	cmd.Flags().DurationVar(&sf.statusLog, "status-interval", time.Minute*10, "Interval of the cache status log, 0 to disable")
	cmd.Flags().BoolVar(&sf.example, "example", false, "Draw random example pictoglyphs instead of the hash")

	return cmd
}

func (sf *serveFlags) run(ctx context.Context, logger hclog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	root, err := filepath.Abs(sf.root)
	if err != nil {
		return fmt.Errorf("root: %w", err)
	}
	sv, err := newServer(&serverConfig{
		Dir:        filepath.Join(root, "generated"),
		MaxFiles:   sf.maxFiles,
		MaxSize:    infounit.ByteCount(sf.maxSizeMB) * infounit.Megabyte,
		MaxAge:     sf.maxAge,
		GCInterval: sf.gcInterval,
		StatusLog:  sf.statusLog,
		Example:    sf.example,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}

	errc := make(chan error, 1)
	go func() { errc <- sv.serve(ctx) }()

	httpd := &http.Server{
		Addr:           sf.listen,
		Handler:        sv,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Minute,
		MaxHeaderBytes: 1 << 13,
		ErrorLog:       logger.Named("http").StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true}),
	}
	go func() {
		<-ctx.Done()
		sdctx, sdcancel := context.WithTimeout(context.Background(), time.Second*5)
		defer sdcancel()
		if err := httpd.Shutdown(sdctx); err != nil { //nolint:contextcheck
			logger.Error("shutdown", "error", err)
		}
	}()

	logger.Info("listening", "addr", sf.listen, "cache", sv.cache.Dir())
	lerr := httpd.ListenAndServe()
	cancel()
	serr := <-errc
	if lerr != nil && !errors.Is(lerr, http.ErrServerClosed) {
		return fmt.Errorf("httpd: %w", lerr)
	}
	if serr != nil {
		return serr
	}
	logger.Info("stopped", "cache", sv.cache.Status().String())

	return nil
}
