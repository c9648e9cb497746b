package aquanet

import (
	"sync"
	"time"

	As "github.com/marisol/aquanet/server"
)

type RunSupervisor struct {
	View     *View
	Interval time.Duration
	Ticker   *time.Ticker
	StopChan chan struct{}
	WG       sync.WaitGroup
}

const defaultRefresh = 60 * time.Second

// NewRunSupervisor is a wrapper around the View that manages the
// refresh goroutine. They are strongly coupled, one knows about the
// other. Simulators may rewrite their output files between runs, so
// each tick re-runs every assessment against current table data.
func (v *View) NewRunSupervisor() *RunSupervisor {
	rs := &RunSupervisor{
		View:     v,
		Interval: defaultRefresh,
	}
	v.Supervisor = rs
	return rs
}

// ReloadConfig rebuilds every engine from new scenario stanzas
// and restarts the refresh loop. A failed reload keeps the old
// engines and still restarts the loop.
func (v *View) ReloadConfig(c []As.ConfigFile) error {
	v.Supervisor.Stop()
	defer v.Supervisor.Start()

	engines := make([]*As.Assessment, 0, len(c))
	for _, cf := range c {
		engine, err := As.NewAssessmentFromConfig(cf)
		if err != nil {
			return err
		}
		engines = append(engines, engine)
	}

	v.MU.Lock()
	v.Engines = engines
	v.MU.Unlock()

	return nil
}

// Start the RunSupervisor
func (rs *RunSupervisor) Start() {
	rs.StopChan = make(chan struct{})
	rs.Ticker = time.NewTicker(rs.Interval)

	rs.WG.Add(1)
	go func() {
		defer rs.WG.Done()
		defer rs.Ticker.Stop()

		for {
			select {
			case <-rs.Ticker.C:
				rs.View.RunAll()
			case <-rs.StopChan:
				return
			}
		}
	}()
}

// Stop the RunSupervisor. Safe to call twice: the channel is
// dropped after closing so a second Stop is a no-op.
func (rs *RunSupervisor) Stop() {
	if rs.StopChan != nil {
		close(rs.StopChan)
		rs.WG.Wait()
		rs.StopChan = nil
	}
}

// Restart the RunSupervisor
func (rs *RunSupervisor) Restart() {
	rs.Stop()
	rs.Start()
}
