package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/clinic-console/internal/config"
	"github.com/jwalitptl/clinic-console/pkg/httputil"
)

// collections drives the generic handler: one spec per path segment.
var collections = []resourceSpec{
	{name: "citas", idField: "id_cita"},
	{name: "pacientes", idField: "id_paciente"},
	{name: "medicos", idField: "id_medico"},
	{name: "especialidades", idField: "id_especialidad"},
	{name: "consultorios", idField: "id_consultorio"},
	{name: "horarios", idField: "id_horario", validate: validateSchedule},
	{name: "facturas", idField: "id_factura"},
	{name: "pagos", idField: "id_pago", validate: validatePayment, prepare: assignPaymentDate},
	{name: "metodos_pago", idField: "id_metodo_pago", numericID: true},
	{name: "notificaciones", idField: "id_notificacion"},
	{name: "telefonos", idField: "id_telefonos"},
	{name: "usuarios", idField: "id_usuario", readOnly: true},
}

// Server is the local development API: the same REST convention the real
// backend speaks, over an embedded document store.
type Server struct {
	engine *gin.Engine
	store  *Store
	cfg    config.ServerConfig
	log    zerolog.Logger
}

func New(cfg config.ServerConfig, store *Store, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine: gin.New(),
		store:  store,
		cfg:    cfg,
		log:    log,
	}
	s.setup()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) setup() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogger())
	s.engine.Use(rateLimit(rate.Limit(s.cfg.RateLimit), s.cfg.RateBurst))

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.POST("/auth/token", issueToken(s.cfg.JWTSecret))

	authorized := s.engine.Group("/", authRequired(s.cfg.JWTSecret))
	for _, spec := range collections {
		newResourceHandler(s.store, spec, s.log).register(authorized)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

func rateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(limit, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorBody{Message: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// SeedUsers populates the read-only usuarios collection on first start.
func (s *Server) SeedUsers(ctx context.Context) error {
	count, err := s.store.Count(ctx, "usuarios")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	users := []map[string]interface{}{
		{"nombre": "Administrador", "correo": "admin@clinica.local", "rol": "admin", "fecha_creacion": now},
		{"nombre": "Recepción", "correo": "recepcion@clinica.local", "rol": "recepcion", "fecha_creacion": now},
	}
	for _, user := range users {
		id := uuid.NewString()
		user["id_usuario"] = id
		if err := s.store.Insert(ctx, "usuarios", id, user); err != nil {
			return err
		}
	}
	return nil
}
