package report

import "github.com/arloliu/hostelmatch/types"

// Columns are the export column names, in order.
var Columns = []string{
	"room_number",
	"student_id",
	"name",
	"gender",
	"course",
	"year",
	"occupancy_fraction",
}

// Row is one placed student in the flat export.
type Row struct {
	RoomNumber        string `json:"room_number"`
	StudentID         string `json:"student_id"`
	Name              string `json:"name"`
	Gender            string `json:"gender"`
	Course            string `json:"course"`
	Year              string `json:"year"`
	OccupancyFraction string `json:"occupancy_fraction"`
}

// Values returns the row cells in Columns order.
func (r Row) Values() []string {
	return []string{r.RoomNumber, r.StudentID, r.Name, r.Gender, r.Course, r.Year, r.OccupancyFraction}
}

// Flatten returns one row per placed student, rooms in order and members in
// placement order. Empty rooms and unallocated students produce no rows.
func Flatten(result *types.AllocationResult) []Row {
	if result == nil {
		return nil
	}

	rows := make([]Row, 0, result.Allocated())
	for _, room := range result.Rooms {
		label := room.Label()
		fraction := room.OccupancyFraction()
		for _, m := range room.Members {
			rows = append(rows, Row{
				RoomNumber:        label,
				StudentID:         m.ID,
				Name:              m.Name,
				Gender:            m.Gender,
				Course:            m.Course,
				Year:              m.Year,
				OccupancyFraction: fraction,
			})
		}
	}

	return rows
}

// Table returns the flat export as a types.Table.
func Table(result *types.AllocationResult) types.Table {
	rows := Flatten(result)
	t := types.Table{
		Columns: append([]string(nil), Columns...),
		Rows:    make([][]string, len(rows)),
	}
	for i, r := range rows {
		t.Rows[i] = r.Values()
	}

	return t
}
