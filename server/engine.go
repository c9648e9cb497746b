package aquanet

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/marisol/aquanet/plugin"
	"github.com/marisol/aquanet/results"
	"github.com/marisol/aquanet/security"
	"github.com/marisol/aquanet/types"
)

// sampleBatchSize is how many metric samples the output adapter
// buffers before a batch write.
const sampleBatchSize = 64

// Assessment represents one scenario's loaded simulator output and
// the security metrics computed from it. This is where pointers to
// all the result tables are held; the Report is rebuilt on every Run.
type Assessment struct {
	MU     sync.RWMutex
	RunID  string
	Config ConfigFile

	NodeDemand   *results.Table
	NodeQuality  *results.Table
	LinkFlowRate *results.Table
	LinkQuality  *results.Table
	Links        []types.LinkInfo

	Output plugin.OutputAdapter // optional sample sink
	Report *Report
}

// Report collects every computed series for one run, plus the
// contamination event timeline and the agreement measures between
// the two extent derivations.
type Report struct {
	Scenario       string
	RunID          string
	DetectionLimit float64

	Series map[string]*results.Series
	Events []types.ContamEvent

	// Disagreement between the indirect and direct extent methods:
	// mean is Σ|ECi−ECd| / ΣECi over the whole series, final is the
	// relative difference at the last step.
	MeanDisagreement  float64
	FinalDisagreement float64
}

// NewAssessmentFromConfig loads all result tables and the topology
// named by one scenario stanza.
func NewAssessmentFromConfig(cf ConfigFile) (*Assessment, error) {
	a := &Assessment{
		RunID:  uuid.NewString(),
		Config: cf,
	}

	var err error
	if a.NodeDemand, err = LoadTableFile(cf.NodeDemand); err != nil {
		return nil, fmt.Errorf("node demand: %w", err)
	}
	if a.NodeQuality, err = LoadTableFile(cf.NodeQuality); err != nil {
		return nil, fmt.Errorf("node quality: %w", err)
	}
	if a.LinkFlowRate, err = LoadTableFile(cf.LinkFlowRate); err != nil {
		return nil, fmt.Errorf("link flow rate: %w", err)
	}
	if a.LinkQuality, err = LoadTableFile(cf.LinkQuality); err != nil {
		return nil, fmt.Errorf("link quality: %w", err)
	}
	if a.Links, err = LoadTopologyFile(cf.Topology); err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}

	if cf.StorePath != "" {
		if a.Output, err = plugin.NewBadgerOutput(cf.StorePath, sampleBatchSize); err != nil {
			return nil, fmt.Errorf("sample store: %w", err)
		}
	}

	slog.Info("Assessment loaded",
		slog.String("scenario", cf.ID),
		slog.String("runID", a.RunID),
		slog.Int("timeSteps", a.NodeQuality.Len()),
		slog.Int("nodes", a.NodeQuality.NumColumns()),
		slog.Int("links", len(a.Links)))

	return a, nil
}

// Run computes every security metric and rebuilds the Report.
// Per-step mass and volume are collapsed across nodes, then turned
// into cumulative series by the cumsum transformer plugin.
func (a *Assessment) Run() error {
	a.MU.Lock()
	defer a.MU.Unlock()

	limit := a.Config.DetectionLimit

	mc, err := security.MassContaminantConsumed(a.NodeDemand, a.NodeQuality)
	if err != nil {
		slog.Error("Could not compute mass consumed", slog.Any("Error", err))
		return err
	}
	vc, err := security.VolumeContaminantConsumed(a.NodeDemand, a.NodeQuality, limit)
	if err != nil {
		slog.Error("Could not compute volume consumed", slog.Any("Error", err))
		return err
	}
	eci, err := security.ExtentContaminationIndirect(a.NodeQuality, a.LinkFlowRate, a.Links, limit)
	if err != nil {
		slog.Error("Could not compute indirect extent", slog.Any("Error", err))
		return err
	}

	lengths := make(map[string]float64, len(a.Links))
	for _, l := range a.Links {
		lengths[l.Name] = l.Length
	}
	ecd, err := security.ExtentContaminationDirect(a.LinkQuality, lengths, limit)
	if err != nil {
		slog.Error("Could not compute direct extent", slog.Any("Error", err))
		return err
	}

	cumsum, err := plugin.TransformerLookup("cumsum")
	if err != nil {
		return err
	}
	mcCum, err := cumsum.Transform(types.MetricMassConsumed, mc.SumRows())
	if err != nil {
		return err
	}
	vcCum, err := cumsum.Transform(types.MetricVolumeConsumed, vc.SumRows())
	if err != nil {
		return err
	}

	events, err := a.findEvents(limit)
	if err != nil {
		return err
	}

	report := &Report{
		Scenario:       a.Config.ID,
		RunID:          a.RunID,
		DetectionLimit: limit,
		Series: map[string]*results.Series{
			types.MetricMassConsumed:   mcCum,
			types.MetricVolumeConsumed: vcCum,
			types.MetricExtentIndirect: eci,
			types.MetricExtentDirect:   ecd,
		},
		Events: events,
	}
	report.MeanDisagreement, report.FinalDisagreement = extentDisagreement(eci, ecd)

	a.Report = report

	slog.Info("Assessment complete",
		slog.String("scenario", a.Config.ID),
		slog.Int("events", len(events)),
		slog.Float64("meanDisagreement", report.MeanDisagreement))

	if a.Output != nil {
		if err := a.writeReport(report); err != nil {
			slog.Error("Could not write report samples", slog.Any("Error", err))
			return err
		}
	}

	return nil
}

// findEvents builds the contamination timeline: one event per pipe,
// ordered by onset time, with the running extent filled in.
func (a *Assessment) findEvents(limit float64) ([]types.ContamEvent, error) {
	events, err := security.ContaminationOnsets(a.NodeQuality, a.LinkFlowRate, a.Links, limit)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})

	extent := 0.0
	for i := range events {
		extent += events[i].AddedLength
		events[i].Extent = extent
		events[i].Scenario = a.Config.ID
	}

	return events, nil
}

// writeReport pushes every report series through the output adapter.
// The adapter batches internally; one Flush at the end covers the
// remainder.
func (a *Assessment) writeReport(report *Report) error {
	now := time.Now().UnixNano()
	for metric, series := range report.Series {
		for i := 0; i < series.Len(); i++ {
			sample := &types.MetricSample{
				Scenario: report.Scenario,
				Metric:   metric,
				Time:     series.Time(i),
				Value:    series.At(i),
				Recorded: now,
			}
			if err := a.Output.WriteSample(sample); err != nil {
				return fmt.Errorf("write %s sample: %w", metric, err)
			}
		}
	}
	return a.Output.Flush()
}

// extentDisagreement measures how far the direct extent method
// drifts from the indirect one across a run.
func extentDisagreement(eci, ecd *results.Series) (mean, final float64) {
	sumDiff := 0.0
	for i := 0; i < eci.Len(); i++ {
		d := eci.At(i) - ecd.At(i)
		if d < 0 {
			d = -d
		}
		sumDiff += d
	}
	if total := eci.Sum(); total > 0 {
		mean = sumDiff / total
	}
	if last := eci.Len() - 1; last >= 0 && eci.At(last) > 0 {
		final = RelativeError(ecd.At(last), eci.At(last))
	}
	return mean, final
}
