package app

import (
	"database/sql"

	"github.com/ferdiebergado/eventsapi/internal/metrics"
	"github.com/ferdiebergado/eventsapi/internal/platform/db"
	"github.com/ferdiebergado/eventsapi/internal/platform/router"
	"github.com/ferdiebergado/eventsapi/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Validator validation.Validator
	Router    router.Router
	TxMgr     db.TxManager
	Metrics   *metrics.Metrics
}

func newProvider(dbConn *sql.DB) *Provider {
	return &Provider{
		DB:        dbConn,
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
		TxMgr:     db.NewReadOnlyTxManager(dbConn),
		Metrics:   metrics.New(),
	}
}
