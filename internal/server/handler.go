package server

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-console/pkg/errors"
	"github.com/jwalitptl/clinic-console/pkg/httputil"
)

// resourceSpec parameterizes the generic handler for one collection.
type resourceSpec struct {
	name      string
	idField   string
	numericID bool
	readOnly  bool
	prepare   func(doc map[string]interface{})
	validate  func(doc map[string]interface{}) error
}

type resourceHandler struct {
	store *Store
	spec  resourceSpec
	log   zerolog.Logger
}

func newResourceHandler(store *Store, spec resourceSpec, log zerolog.Logger) *resourceHandler {
	return &resourceHandler{store: store, spec: spec, log: log}
}

func (h *resourceHandler) register(r *gin.RouterGroup) {
	col := r.Group("/" + h.spec.name)
	col.GET("/", h.list)
	col.GET("/:id", h.get)
	if h.spec.readOnly {
		col.POST("/add", h.methodNotAllowed)
		col.PUT("/update/:id", h.methodNotAllowed)
		col.DELETE("/delete/:id", h.methodNotAllowed)
		return
	}
	col.POST("/add", h.create)
	col.PUT("/update/:id", h.update)
	col.DELETE("/delete/:id", h.remove)
}

func (h *resourceHandler) list(c *gin.Context) {
	docs, err := h.store.List(c.Request.Context(), h.spec.name)
	if err != nil {
		h.log.Error().Err(err).Str("collection", h.spec.name).Msg("list failed")
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}
	httputil.RespondWithData(c, http.StatusOK, docs)
}

func (h *resourceHandler) get(c *gin.Context) {
	doc, err := h.store.Get(c.Request.Context(), h.spec.name, c.Param("id"))
	if err == sql.ErrNoRows {
		httputil.RespondWithError(c, errors.NotFound(h.spec.name, err))
		return
	}
	if err != nil {
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}
	httputil.RespondWithData(c, http.StatusOK, doc)
}

func (h *resourceHandler) create(c *gin.Context) {
	var doc map[string]interface{}
	if err := c.ShouldBindJSON(&doc); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid request body", err))
		return
	}
	if h.spec.validate != nil {
		if err := h.spec.validate(doc); err != nil {
			httputil.RespondWithError(c, err)
			return
		}
	}

	id := uuid.NewString()
	if h.spec.numericID {
		seq, err := h.store.NextSeq(c.Request.Context(), h.spec.name)
		if err != nil {
			httputil.RespondWithError(c, errors.Internal(err))
			return
		}
		doc[h.spec.idField] = seq
		id = strconv.FormatInt(seq, 10)
	} else {
		doc[h.spec.idField] = id
	}
	if h.spec.prepare != nil {
		h.spec.prepare(doc)
	}

	if err := h.store.Insert(c.Request.Context(), h.spec.name, id, doc); err != nil {
		h.log.Error().Err(err).Str("collection", h.spec.name).Msg("create failed")
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}
	httputil.RespondWithData(c, http.StatusCreated, doc)
}

func (h *resourceHandler) update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid request body", err))
		return
	}
	if h.spec.validate != nil {
		if err := h.spec.validate(fields); err != nil {
			httputil.RespondWithError(c, err)
			return
		}
	}
	// Last write wins: no version token, the merged document simply
	// replaces the stored one.
	delete(fields, h.spec.idField)

	doc, err := h.store.Update(c.Request.Context(), h.spec.name, c.Param("id"), fields)
	if err == sql.ErrNoRows {
		httputil.RespondWithError(c, errors.NotFound(h.spec.name, err))
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("collection", h.spec.name).Msg("update failed")
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}
	httputil.RespondWithData(c, http.StatusOK, doc)
}

func (h *resourceHandler) remove(c *gin.Context) {
	err := h.store.Delete(c.Request.Context(), h.spec.name, c.Param("id"))
	if err == sql.ErrNoRows {
		httputil.RespondWithError(c, errors.NotFound(h.spec.name, err))
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("collection", h.spec.name).Msg("delete failed")
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}
	httputil.RespondWithData(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *resourceHandler) methodNotAllowed(c *gin.Context) {
	httputil.RespondWithError(c, errors.MethodNotAllowed(h.spec.name+" is read-only"))
}

// validateSchedule mirrors the console's submit-time rule so raw API
// clients get the same answer.
func validateSchedule(doc map[string]interface{}) error {
	start, _ := doc["hora_inicio"].(string)
	end, _ := doc["hora_fin"].(string)
	if start != "" && end != "" && start >= end {
		return errors.BadRequest("start time must be before end time", nil)
	}
	return nil
}

func validatePayment(doc map[string]interface{}) error {
	if amount, ok := doc["monto"].(float64); ok && amount <= 0 {
		return errors.BadRequest("amount must be greater than 0", nil)
	}
	return nil
}

func assignPaymentDate(doc map[string]interface{}) {
	if _, ok := doc["fecha_pago"]; !ok {
		doc["fecha_pago"] = time.Now().UTC().Format(time.RFC3339)
	}
}
