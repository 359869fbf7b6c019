package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	casehandler "ecrc42/internal/caseexample/handler"
	caseservice "ecrc42/internal/caseexample/service"
	casestore "ecrc42/internal/caseexample/store"
	certhandler "ecrc42/internal/certificate/handler"
	certservice "ecrc42/internal/certificate/service"
	checkhandler "ecrc42/internal/check/handler"
	checkmetrics "ecrc42/internal/check/metrics"
	checkservice "ecrc42/internal/check/service"
	checkstore "ecrc42/internal/check/store"
	"ecrc42/internal/evaluator"
	evalhandler "ecrc42/internal/evaluator/handler"
	evalmetrics "ecrc42/internal/evaluator/metrics"
	"ecrc42/internal/export"
	httpapi "ecrc42/internal/http"
	jwttoken "ecrc42/internal/jwt_token"
	licensehandler "ecrc42/internal/license/handler"
	licenseservice "ecrc42/internal/license/service"
	licensestore "ecrc42/internal/license/store"
	"ecrc42/internal/notify"
	"ecrc42/internal/platform/config"
	"ecrc42/internal/platform/httpserver"
	"ecrc42/internal/platform/logger"
	"ecrc42/internal/platform/metrics"
	"ecrc42/internal/platform/tracing"
	"ecrc42/internal/user/activity"
	userhandler "ecrc42/internal/user/handler"
	usermetrics "ecrc42/internal/user/metrics"
	userservice "ecrc42/internal/user/service"
	userstore "ecrc42/internal/user/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Log)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	infra, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer infra.Close(log)

	notifyMetrics := notify.NewMetrics()
	sinks, closeSinks, err := openSinks(ctx, cfg, log, notifyMetrics)
	if err != nil {
		return err
	}
	defer closeSinks()
	dispatcher := notify.NewDispatcher(sinks, notify.WithLogger(log), notify.WithMetrics(notifyMetrics))

	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Warn("unknown timezone, printing dates in UTC", "timezone", cfg.Server.Timezone, "error", err)
		loc = time.UTC
	}
	renderer := export.NewRenderer(export.WithLocation(loc))

	users := userstore.New(infra.docs)
	checks := checkstore.New(infra.docs)
	recorder := activity.NewRecorder(users, log, prometheus.DefaultRegisterer)
	jwt := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	eval := evaluator.NewService(evaluator.WithMetrics(evalmetrics.New()))

	userSvc := userservice.New(users, jwt, infra.revocations,
		userservice.WithLogger(log),
		userservice.WithMetrics(usermetrics.New()),
		userservice.WithAdmin(userservice.AdminCredentials{
			Email:        cfg.Auth.AdminEmail,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		}),
	)
	checkSvc := checkservice.New(checks, eval, recorder, users, renderer,
		checkservice.WithLogger(log),
		checkservice.WithMetrics(checkmetrics.New()),
	)
	caseSvc := caseservice.New(casestore.New(infra.docs), users, recorder, dispatcher,
		caseservice.WithLogger(log),
		caseservice.WithBaseURL(cfg.Server.PublicBaseURL),
	)
	licenseSvc := licenseservice.New(licensestore.New(infra.docs), recorder, renderer,
		licenseservice.WithLogger(log),
	)
	certSvc := certservice.New(users, checks, recorder, renderer, certservice.WithLogger(log))

	router := httpapi.NewRouter(httpapi.Config{
		Logger:         log,
		Metrics:        metrics.New(),
		RequestTimeout: cfg.Server.RequestTimeout,
		Tokens:         jwttoken.NewJWTServiceAdapter(jwt),
		Revocations:    infra.revocations,
		LoginLimiter:   infra.limiter,
		Health:         infra.health,
	}, httpapi.Handlers{
		Users:        userhandler.New(userSvc, log),
		Evaluator:    evalhandler.New(eval, log),
		Checks:       checkhandler.New(checkSvc, log),
		Cases:        casehandler.New(caseSvc, log),
		Licenses:     licensehandler.New(licenseSvc, log),
		Certificates: certhandler.New(certSvc, log),
	})
	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting ecrc42", "addr", cfg.Server.Addr, "store", cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
