package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/motionlab/internal/storage"
	"github.com/san-kum/motionlab/internal/trajectory"
)

type ExportData struct {
	storage.RunMetadata
	Samples []trajectory.Sample `json:"samples"`
}

func JSON(w io.Writer, meta *storage.RunMetadata, samples []trajectory.Sample) error {
	data := ExportData{RunMetadata: *meta, Samples: samples}
	if data.Samples == nil {
		data.Samples = []trajectory.Sample{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
