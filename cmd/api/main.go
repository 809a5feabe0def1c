package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andeantex/facturador/internal/config"
	"github.com/andeantex/facturador/internal/database"
	"github.com/andeantex/facturador/internal/fiscal"
	fiscalStore "github.com/andeantex/facturador/internal/fiscal/store"
	appHttp "github.com/andeantex/facturador/internal/http"
	fiscalHandler "github.com/andeantex/facturador/internal/http/fiscaldoc"
	orderHandler "github.com/andeantex/facturador/internal/http/order"
	"github.com/andeantex/facturador/internal/metrics"
	"github.com/andeantex/facturador/internal/notify"
	"github.com/andeantex/facturador/internal/order"
	orderStore "github.com/andeantex/facturador/internal/order/store"
	"github.com/andeantex/facturador/internal/voucher"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		emailSender = notify.NewEmail(cfg.Email.BaseURL, cfg.Email.APIKey, cfg.Email.From)
		pushSender  = notify.NewPush(cfg.Push.BaseURL, cfg.Push.Key)
		emissions   = metrics.NewEmissions(prometheus.DefaultRegisterer)
	)

	orderService := order.NewService(orderStore.New(db), emailSender, pushSender)

	fiscalService := fiscal.NewService(
		fiscalStore.New(db),
		fiscal.NewClient(cfg.Fiscal.APIURL, cfg.Fiscal.Token),
		orderService,
		emailSender,
		fiscal.Config{
			SeriesInvoice: cfg.Fiscal.SeriesInvoice,
			SeriesReceipt: cfg.Fiscal.SeriesReceipt,
			TaxPercent:    cfg.Fiscal.TaxPercent,
		},
		emissions,
	)

	var (
		ordersH = orderHandler.NewHandler(orderService, voucher.NewArtifactStore(cfg.Uploads.Dir))
		fiscalH = fiscalHandler.NewHandler(fiscalService)
	)

	router := appHttp.New(cfg.Server.AllowedOrigins, ordersH, fiscalH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
