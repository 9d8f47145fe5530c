package dataprocessing

import (
	"fmt"
	"math"

	"combinecli/pkg/contracts/domain"
)

// CalculateMetricStatistics computes mean, sample standard deviation,
// minimum and maximum for each numeric metric across accepted records.
// Metrics with fewer than two observations get nil statistics with the
// true observation count.
func CalculateMetricStatistics(athletes []domain.AthleteRecord) map[string]domain.MetricStatistics {
	stats := make(map[string]domain.MetricStatistics, len(domain.MetricNames))

	for _, metric := range domain.MetricNames {
		var values []float64
		for i := range athletes {
			if v := athletes[i].Metric(metric); v != nil {
				values = append(values, *v)
			}
		}

		if len(values) < 2 {
			stats[metric] = domain.MetricStatistics{Count: len(values)}
			continue
		}

		mean := meanOf(values)
		// Guarded by the length check above, so the error path is unreachable.
		std, err := sampleStdDev(values, mean)
		if err != nil {
			stats[metric] = domain.MetricStatistics{Count: len(values)}
			continue
		}

		min, max := values[0], values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}

		stats[metric] = domain.MetricStatistics{
			Mean:  round2(mean),
			Std:   round2(std),
			Min:   round2(min),
			Max:   round2(max),
			Count: len(values),
		}
	}

	return stats
}

func meanOf(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev computes the unbiased standard deviation with the N−1
// denominator. It requires at least two observations.
func sampleStdDev(values []float64, mean float64) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("sample standard deviation requires at least 2 values, got %d", len(values))
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1)), nil
}

func round2(v float64) *float64 {
	r := math.Round(v*100) / 100
	return &r
}
