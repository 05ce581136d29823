package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"strings"

	mem "medication-scheduler/internal/adapters/storage/memory"
	pg "medication-scheduler/internal/adapters/storage/postgres"
	"medication-scheduler/internal/domain/appointments"
	"medication-scheduler/internal/domain/history"
	"medication-scheduler/internal/domain/medications"
	"medication-scheduler/internal/domain/treatments"
	"medication-scheduler/internal/middleware"
	"medication-scheduler/internal/platform/logger"
	"medication-scheduler/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "medication-scheduler/docs"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene, registra cada request.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		medsRepo  medications.Repository
		treatRepo treatments.Repository
		apptRepo  appointments.Repository
		histRepo  history.Repository
		treatTx   treatments.TxRunner
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		medsRepo = pg.NewMedicationsRepo(db)
		treatRepo = pg.NewTreatmentsRepo(db)
		apptRepo = pg.NewAppointmentsRepo(db)
		histRepo = pg.NewHistoryRepo(db)
		treatTx = pg.NewTreatmentTx(db)
	} else {
		medsRepo = mem.NewMedicationRepo()
		treatRepo = mem.NewTreatmentRepo()
		apptRepo = mem.NewAppointmentRepo()
		histRepo = mem.NewHistoryRepo()
		treatTx = mem.NewTreatmentTx(treatRepo, apptRepo)
	}

	// Services por módulo. El orden importa: tratamientos consume el repo de
	// citas, y el servicio de citas consume tratamientos para el cierre
	// automático, siempre vía interfaces del lado consumidor.
	medsSvc := medications.NewService(medsRepo)
	histSvc := history.NewService(histRepo)
	treatSvc := treatments.NewService(treatRepo, apptRepo, medsSvc, treatTx)
	apptSvc := appointments.NewService(apptRepo, histSvc, treatSvc)

	resolver := &doseContextResolver{
		appts:  apptSvc,
		treats: treatSvc,
		meds:   medsSvc,
	}

	// Rutas por módulo
	medications.RegisterRoutes(r, medsSvc)
	treatments.RegisterRoutes(r, treatSvc, apptSvc)
	appointments.RegisterRoutes(r, apptSvc, treatSvc)
	history.RegisterRoutes(r, histSvc, apptSvc, resolver)

	return r
}

// doseContextResolver arma las etiquetas descriptivas de un registro de
// historial siguiendo la cadena cita -> tratamiento -> medicamento. Un eslabón
// borrado no rompe el reporte: se sustituye por la etiqueta de respaldo.
type doseContextResolver struct {
	appts  *appointments.Service
	treats *treatments.Service
	meds   *medications.Service
}

func (d *doseContextResolver) Describe(ctx context.Context, appointmentID, ownerUserID string) history.DoseContext {
	dc := history.DoseContext{
		TreatmentName:  history.FallbackTreatmentLabel,
		MedicationName: history.FallbackMedicationLabel,
	}

	if strings.TrimSpace(appointmentID) == "" {
		return dc
	}

	a, err := d.appts.GetByID(ctx, appointmentID, ownerUserID)
	if err != nil {
		return dc
	}

	t, err := d.treats.GetByID(ctx, a.TreatmentID, ownerUserID)
	if err != nil {
		return dc
	}
	dc.TreatmentName = t.Name

	m, err := d.meds.GetByID(ctx, t.MedicationID, ownerUserID)
	if err != nil {
		return dc
	}
	dc.MedicationName = m.Name

	return dc
}
