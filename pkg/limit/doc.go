/*
Package limit groups the permit based limiting primitives provided by gopermit.

Two packages cooperate:

  - fifo: A fixed-capacity permit pool with a strict first-in-first-out wait
    queue. Callers acquire a permit before doing throttled work and release
    it afterwards; excess callers block in arrival order.
  - replenish: An optional driver that restores outstanding permits on a
    fixed interval or cron schedule, turning a permit pool into a
    fixed-window request budget.

The fifo limiter is the building block; replenish is strictly additive and
only uses the limiter's public Restore extension point.
*/
package limit
