package attendance

type RecordStatus string

const (
	RecordOnTime RecordStatus = "On Time"
	RecordLate   RecordStatus = "Late"
	RecordAbsent RecordStatus = "Absent"
)

// TimeRecord is one row per employee per date. Status is stored as classified
// at check-in time, not recomputed from the clock times.
type TimeRecord struct {
	ID           string       `json:"id" yaml:"id"`
	EmployeeID   string       `json:"employeeId" yaml:"employeeId"`
	EmployeeName string       `json:"employeeName" yaml:"employeeName"`
	Date         string       `json:"date" yaml:"date"`
	TimeIn       string       `json:"timeIn" yaml:"timeIn"`
	TimeOut      string       `json:"timeOut" yaml:"timeOut"`
	Status       RecordStatus `json:"status" yaml:"status"`
}

// EmployeeSchedule holds the weekly shift strings for one employee, one
// record per employee.
type EmployeeSchedule struct {
	ID           string `json:"id" yaml:"id"`
	EmployeeID   string `json:"employeeId" yaml:"employeeId"`
	EmployeeName string `json:"employeeName" yaml:"employeeName"`
	Monday       string `json:"monday" yaml:"monday"`
	Tuesday      string `json:"tuesday" yaml:"tuesday"`
	Wednesday    string `json:"wednesday" yaml:"wednesday"`
	Thursday     string `json:"thursday" yaml:"thursday"`
	Friday       string `json:"friday" yaml:"friday"`
}
