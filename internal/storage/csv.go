package storage

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/motionlab/internal/trajectory"
)

var samplesHeader = []string{"time", "position", "velocity"}

// WriteSamplesCSV writes samples with full float precision so they load back
// unchanged.
func WriteSamplesCSV(w io.Writer, samples []trajectory.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(samplesHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Time, 'g', -1, 64),
			strconv.FormatFloat(s.Position, 'g', -1, 64),
			strconv.FormatFloat(s.Velocity, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
