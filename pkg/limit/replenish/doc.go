/*
Package replenish restores outstanding permits of a fifo.Limiter on a fixed
interval or cron schedule.

A replenisher turns a permit pool into a fixed-window request budget: callers
acquire permits and never release them, and the replenisher hands the permits
back at each tick through the limiter's Restore extension point. Restore is
bounded by the number of permits actually held, so a replenisher can never
mint permits or grow the pool past its capacity.

Basic usage:

	limiter, _ := fifo.NewSafe(100) // 100 requests per window

	rep, err := replenish.NewSafe(replenish.Config{
		Limiter:  limiter,
		Interval: time.Second, // window length
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := rep.Start(); err != nil {
		log.Fatal(err)
	}
	defer func() { <-rep.Stop() }()

Cron schedules use the same parser configuration as second-granularity cron
expressions, plus descriptors:

	rep, err := replenish.NewSafe(replenish.Config{
		Limiter:  limiter,
		CronExpr: "0 * * * * *", // top of every minute
	})

Amount controls how many permits each tick restores; zero or negative means
"all outstanding", which gives fixed-window semantics. A positive Amount
drips permits back gradually instead.

A replenisher runs at most one lifecycle: Start is idempotent while running,
and after Stop it returns an error wrapping errors.ErrClosed. Create a new
replenisher to resume ticking.

A pool driven by a replenisher should not also be released by its callers:
the two accounting models double-count and Release will eventually panic.
Pick one model per pool.
*/
package replenish
