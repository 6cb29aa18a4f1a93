package get_occupancy_board

import (
	"time"

	overviewModels "github.com/kittyofheaven/kaizen-booking/internal/service/overview/models"
)

// MachineView занятость одной стиральной машины
type MachineView struct {
	ResourceID       string `json:"resourceId"`
	DisplayName      string `json:"displayName"`
	Running          bool   `json:"running"`
	OwnerSummary     string `json:"ownerSummary,omitempty"`
	SlotLabel        string `json:"slotLabel,omitempty"`
	MinutesRemaining int    `json:"minutesRemaining,omitempty"`
}

// OccupancyBoardResponse модель доски текущей занятости машин
type OccupancyBoardResponse struct {
	Date     string        `json:"date"`
	AsOf     time.Time     `json:"asOf"`
	Degraded bool          `json:"degraded"`
	Machines []MachineView `json:"machines"`
}

// FromOccupancyBoard конвертирует доску занятости в HTTP response
func FromOccupancyBoard(board *overviewModels.OccupancyBoard) *OccupancyBoardResponse {
	machines := make([]MachineView, len(board.Machines))
	for i, m := range board.Machines {
		machines[i] = MachineView{
			ResourceID:       m.Resource.ID,
			DisplayName:      m.Resource.DisplayName,
			Running:          m.Running,
			OwnerSummary:     m.OwnerSummary,
			SlotLabel:        m.SlotLabel,
			MinutesRemaining: m.MinutesRemaining,
		}
	}

	return &OccupancyBoardResponse{
		Date:     board.Date,
		AsOf:     board.AsOf,
		Degraded: board.Degraded,
		Machines: machines,
	}
}
