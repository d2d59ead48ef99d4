package convert

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/levelforge/beatmap/internal/convert"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type instruments struct {
	conversions metric.Int64Counter
	failures    metric.Int64Counter
	bytes       metric.Int64Histogram
}

func newInstruments() (*instruments, error) {
	m := meter()
	var (
		in  instruments
		err error
	)

	in.conversions, err = m.Int64Counter(
		"beatmap.conversions",
		metric.WithDescription("Total conversions completed"),
	)
	if err != nil {
		return nil, err
	}

	in.failures, err = m.Int64Counter(
		"beatmap.conversion.errors",
		metric.WithDescription("Total conversions that failed"),
	)
	if err != nil {
		return nil, err
	}

	in.bytes, err = m.Int64Histogram(
		"beatmap.bytes",
		metric.WithDescription("Size of the binary record read or written"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &in, nil
}
