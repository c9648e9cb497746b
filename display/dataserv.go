package aquanet

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	Ao "github.com/marisol/aquanet/obvy"
	As "github.com/marisol/aquanet/server"
	At "github.com/marisol/aquanet/types"
)

// View serves whatever the Assessments have computed.
type View struct {
	MU         sync.Mutex        // State locks to read data
	Engines    []*As.Assessment  // one per configured scenario
	Stats      *Ao.StatsInternal // Internal status for prometheus
	Supervisor *RunSupervisor    // periodic re-assessment
	server     *http.Server      // Prometheus metrics server
}

// SetupMux handles all data serving:
// - Prometheus metric endpoint
// - Websocket for live report updates
// - Version for programmatic use
// - Report, series, and event data for UI feedback
func (v *View) SetupMux() *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", v.Stats.Handler())
	r.HandleFunc("/ws", v.WebsocketHandler)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(v.StatsMiddleware)
	api.HandleFunc("/version", v.VersionHandler)
	api.HandleFunc("/report", v.ReportHandler)
	api.HandleFunc("/series/{scenario}/{metric}", v.SeriesHandler)
	api.HandleFunc("/events/{scenario}", v.EventsHandler)

	return r
}

var Version = "dev"

func (v *View) VersionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"version": Version})
}

// ReportData is the per-scenario summary served on /api/report
// and streamed over the websocket.
type ReportData struct {
	Scenario         string  `json:"scenario"`
	RunID            string  `json:"runId"`
	DetectionLimit   float64 `json:"detectionLimit"`
	FinalExtent      float64 `json:"finalExtent"`    // meters, indirect method
	FinalMass        float64 `json:"finalMass"`      // cumulative kg
	FinalVolume      float64 `json:"finalVolume"`    // cumulative m3
	Events           int     `json:"events"`
	MeanDisagreement float64 `json:"meanDisagreement"`
}

func (v *View) ReportHandler(w http.ResponseWriter, r *http.Request) {
	allReports := v.CollectReports()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(allReports)
}

// engines snapshots the engine list under the view lock so request
// handlers never race a config reload swapping the slice.
func (v *View) engines() []*As.Assessment {
	v.MU.Lock()
	defer v.MU.Unlock()
	return v.Engines
}

// CollectReports summarizes every engine that has a completed run.
func (v *View) CollectReports() []ReportData {
	var allReports []ReportData

	for _, engine := range v.engines() {
		engine.MU.RLock()
		report := engine.Report
		engine.MU.RUnlock()
		if report == nil {
			continue
		}

		rd := ReportData{
			Scenario:         report.Scenario,
			RunID:            report.RunID,
			DetectionLimit:   report.DetectionLimit,
			Events:           len(report.Events),
			MeanDisagreement: As.FloatPrecise(report.MeanDisagreement, 6),
		}
		if s := report.Series[At.MetricExtentIndirect]; s != nil && s.Len() > 0 {
			rd.FinalExtent = As.FloatPrecise(s.At(s.Len()-1), 2)
		}
		if s := report.Series[At.MetricMassConsumed]; s != nil && s.Len() > 0 {
			rd.FinalMass = As.FloatPrecise(s.At(s.Len()-1), 2)
		}
		if s := report.Series[At.MetricVolumeConsumed]; s != nil && s.Len() > 0 {
			rd.FinalVolume = As.FloatPrecise(s.At(s.Len()-1), 2)
		}

		allReports = append(allReports, rd)
	}

	return allReports
}

// SeriesData is one full metric series served on /api/series.
type SeriesData struct {
	Scenario string    `json:"scenario"`
	Metric   string    `json:"metric"`
	Time     []float64 `json:"time"`
	Values   []float64 `json:"values"`
}

func (v *View) SeriesHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scenario := vars["scenario"]
	metric := vars["metric"]

	for _, engine := range v.engines() {
		engine.MU.RLock()
		report := engine.Report
		engine.MU.RUnlock()
		if report == nil || report.Scenario != scenario {
			continue
		}

		series, ok := report.Series[metric]
		if !ok {
			http.Error(w, "unknown metric", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SeriesData{
			Scenario: scenario,
			Metric:   metric,
			Time:     series.Times(),
			Values:   series.Values(),
		})
		return
	}

	http.Error(w, "unknown scenario", http.StatusNotFound)
}

func (v *View) EventsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scenario := vars["scenario"]

	for _, engine := range v.engines() {
		engine.MU.RLock()
		report := engine.Report
		engine.MU.RUnlock()
		if report == nil || report.Scenario != scenario {
			continue
		}

		events := report.Events
		if events == nil {
			events = []At.ContamEvent{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
		return
	}

	http.Error(w, "unknown scenario", http.StatusNotFound)
}

// RespWriter is a wrapper with StatsMiddleware, used for Prometheus
type RespWriter struct {
	http.ResponseWriter
	Status int
}

// WriteHeader is a helper for StatsMiddleware, used for Prometheus
func (w *RespWriter) WriteHeader(status int) {
	w.Status = status
	w.ResponseWriter.WriteHeader(status)
}

// Write is a helper for StatsMiddleware, used for Prometheus
func (w *RespWriter) Write(b []byte) (int, error) {
	return w.ResponseWriter.Write(b)
}

func (v *View) StatsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := &RespWriter{
			ResponseWriter: w,
			Status:         200,
		}
		next.ServeHTTP(wrapped, r)

		v.Stats.RecWWW(strconv.Itoa(wrapped.Status), r.Method)
	})
}

// NewView builds the serving layer over a set of assessments.
func NewView(engines []*As.Assessment) (*View, error) {
	if len(engines) == 0 {
		slog.Error("Could not get any Assessments for display")
		return nil, errors.New("no assessments found")
	}

	// create an attached prometheus registry
	stats := Ao.NewStatsInternal()

	view := &View{
		Engines: engines,
		Stats:   stats,
	}

	return view, nil
}

// StartDataServ is called by main to run the program.
// It runs every configured scenario once, starts the refresh
// supervisor, and serves the API with the /metrics endpoint that is
// populated by prometheus.
func StartDataServ(c []As.ConfigFile, addr string) error {
	engines := make([]*As.Assessment, 0, len(c))
	for _, cf := range c {
		engine, err := As.NewAssessmentFromConfig(cf)
		if err != nil {
			slog.Error("Failed to init assessment", slog.Any("Error", err))
			return err
		}
		engines = append(engines, engine)
	}

	view, err := NewView(engines)
	if err != nil {
		slog.Error("Could not start data serving", slog.Any("Error", err))
		return err
	}

	if err := view.RunAll(); err != nil {
		return err
	}

	view.NewRunSupervisor()
	view.Supervisor.Start()
	defer view.Supervisor.Stop()

	// Server for the API and stats endpoint,
	// wrapped for request tracing
	view.server = &http.Server{
		Addr:    addr,
		Handler: otelhttp.NewHandler(view.SetupMux(), "aquanet-api"),
	}

	slog.Info("Starting Aquanet data endpoint...", slog.String("Addr", addr))
	if err := view.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Could not start data endpoint", slog.Any("Error", err))
		return err
	}

	return nil
}

// RunAll runs every engine once, recording run duration and event
// counts in the prometheus registry.
func (v *View) RunAll() error {
	for _, engine := range v.engines() {
		start := time.Now()
		if err := engine.Run(); err != nil {
			slog.Error("Assessment run failed",
				slog.String("scenario", engine.Config.ID),
				slog.Any("Error", err))
			return err
		}
		v.Stats.RecRunTimer(time.Since(start).Seconds())

		engine.MU.RLock()
		if engine.Report != nil {
			v.Stats.RecEvents(len(engine.Report.Events))
		}
		engine.MU.RUnlock()
	}
	return nil
}
