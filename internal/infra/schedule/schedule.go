package schedule

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// expresiones de 5 campos, sin segundos
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Validate checks a 5-field cron expression.
func Validate(expr string) error {
	if _, err := parser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// Next is the first activation of expr strictly after from, in UTC.
func Next(expr string, from time.Time) (time.Time, error) {
	sched, err := parser.Parse(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cron expression %q: %w", expr, err)
	}
	return sched.Next(from.UTC()), nil
}

// Start corre job según expr (UTC) hasta que se llame stop.
// Una corrida lenta no se solapa con la siguiente; un panic se loguea.
func Start(name, expr string, job func()) (stop func(), err error) {
	logger := cron.PrintfLogger(log.Default())
	c := cron.New(
		cron.WithParser(parser),
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(expr, job); err != nil {
		return nil, fmt.Errorf("schedule %s: %w", name, err)
	}
	c.Start()
	next := c.Entries()[0].Next
	log.Printf("[cron] %s scheduled %q next=%s", name, expr, next.Format(time.RFC3339))
	return func() { <-c.Stop().Done() }, nil
}
