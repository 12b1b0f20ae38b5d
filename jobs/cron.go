package jobs

import (
	"time"

	"stayverse/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// StayMaintainer marks stays whose check-out date has passed as
// completed.
type StayMaintainer interface {
	CompleteElapsedStays(m *melody.Melody) error
}

// CachePurger drops derived cache entries so they get rebuilt from
// fresh data.
type CachePurger interface {
	PurgeSuggestions() error
}

var (
	stayMaintainer StayMaintainer
	cachePurger    CachePurger
)

// SetStayMaintainer installs the StayMaintainer implementation.
func SetStayMaintainer(maintainer StayMaintainer) {
	stayMaintainer = maintainer
}

// SetCachePurger installs the CachePurger implementation.
func SetCachePurger(purger CachePurger) {
	cachePurger = purger
}

// InitCronJobs schedules the nightly maintenance run.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Running nightly maintenance at: %v", now)

		if stayMaintainer != nil {
			if err := stayMaintainer.CompleteElapsedStays(m); err != nil {
				utils.LogError("Could not complete elapsed stays: %v", err)
			}
		}

		if cachePurger != nil {
			if err := cachePurger.PurgeSuggestions(); err != nil {
				utils.LogError("Could not purge suggestion cache: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs initialized successfully")
	return nil
}
