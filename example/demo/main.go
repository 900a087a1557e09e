// Command demo walks through the calendar value types and the
// in-process calculator.
package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/blockberries/calendar/clock"
	"github.com/blockberries/calendar/local"
	"github.com/blockberries/calendar/types"
)

func main() {
	d := types.NewDate(2000, 1, 1, 0, 0, 0)
	fmt.Println("d =", d.Format(types.DefaultPattern))

	t := d.ToTime()
	t.AddHour(1)
	fmt.Println("t =", t.ToDate().Format(types.DefaultPattern))

	// The same walk through the request API, plus a monthly series that
	// never drifts off the 31st.
	conn := local.NewConnection(clock.System{})
	defer conn.Close()
	ctx := context.Background()

	ch, err := conn.Series(ctx, types.SeriesRequest{
		Start: types.DateInstant(types.NewDate(2024, 1, 31, 0, 0, 0)),
		Step:  types.NewDuration(1, types.Month),
		Count: 6,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("series failed")
	}
	for inst := range ch {
		res, err := conn.Format(ctx, types.FormatRequest{Subject: inst, Pattern: "%a %d %b %Y"})
		if err != nil {
			log.Fatal().Err(err).Msg("format failed")
		}
		fmt.Println(" ", res.Text)
	}

	diff, err := conn.Diff(ctx, types.DiffRequest{
		Subject: types.DateInstant(types.NewDate(2015, 1, 1, 0, 0, 0)),
		Other:   types.DateInstant(types.NewDate(2014, 12, 30, 0, 0, 0)),
		Period:  types.Year,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("diff failed")
	}
	fmt.Printf("2015-01-01 - 2014-12-30 = %d %s\n", diff.Value, diff.Period)
}
