package patient

import (
	"time"

	"github.com/google/uuid"
)

// Demo returns a sample study so the shell has something to display when no
// metadata source is wired up.
func Demo() Summary {
	return Summary{
		Patient: Patient{
			ID:        uuid.New(),
			Name:      "DOE^JANE",
			MRN:       "00482913",
			Sex:       "F",
			BirthDate: time.Date(1967, time.March, 14, 0, 0, 0, 0, time.UTC),
		},
		Study: Study{
			ID:            uuid.New(),
			Description:   "CT CHEST W/O CONTRAST",
			Date:          time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC),
			Modality:    "CT",
			Series: []Series{
				{Number: 1, Description: "SCOUT", InstanceCount: 2},
				{Number: 2, Description: "AXIAL 1.25mm", InstanceCount: 280},
				{Number: 3, Description: "CORONAL MPR", InstanceCount: 70},
				{Number: 4, Description: "SAGITTAL MPR", InstanceCount: 60},
			},
			SeriesCount:   4,
			InstanceCount: 412,
		},
	}
}
