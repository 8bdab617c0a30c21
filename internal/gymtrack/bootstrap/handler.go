package bootstrap

import (
	"context"
	"net/http"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bootstrap_test

type initializer interface {
	Init(ctx context.Context) (*Result, error)
}

type Handler struct {
	initializer initializer
}

func NewHandler(initializer initializer) *Handler {
	return &Handler{
		initializer: initializer,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/setup/init-database", handler.HandleInitDatabase).Methods("POST", "OPTIONS").Name("init-database")
}

func (handler *Handler) HandleInitDatabase(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bootstrap.initDatabase")
	defer span.End()

	result, err := handler.initializer.Init(ctx)
	if err != nil {
		log.Errorf("init database: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "init database failed")
		return
	}

	pkg.WriteJSONResponseOK(w, result)
}
