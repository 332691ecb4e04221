package handlers

import (
	"testing"
	"time"

	"github.com/xalgrow/HRMS/models"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTallyAttendanceSeedsPresentAndAbsent(t *testing.T) {
	records := []models.Attendance{
		{EmployeeID: 1, Date: date("2024-01-05"), Status: models.AttendancePresent},
		{EmployeeID: 1, Date: date("2024-01-10"), Status: models.AttendanceAbsent},
	}

	result := tallyAttendance(records)

	tally, ok := result[1]
	if !ok {
		t.Fatal("employee 1 missing from report")
	}
	if tally[models.AttendancePresent] != 1 {
		t.Errorf("Present = %d, want 1", tally[models.AttendancePresent])
	}
	if tally[models.AttendanceAbsent] != 1 {
		t.Errorf("Absent = %d, want 1", tally[models.AttendanceAbsent])
	}
}

func TestTallyAttendanceZeroCountsPresent(t *testing.T) {
	records := []models.Attendance{
		{EmployeeID: 2, Date: date("2024-01-05"), Status: models.AttendancePresent},
	}

	tally := tallyAttendance(records)[2]
	if got, ok := tally[models.AttendanceAbsent]; !ok || got != 0 {
		t.Errorf("Absent should be pre-seeded to 0, got %d (present=%v)", got, ok)
	}
}

func TestTallyAttendanceUnknownStatusAccumulates(t *testing.T) {
	records := []models.Attendance{
		{EmployeeID: 3, Date: date("2024-01-05"), Status: "Remote"},
		{EmployeeID: 3, Date: date("2024-01-06"), Status: "Remote"},
	}

	tally := tallyAttendance(records)[3]
	if tally["Remote"] != 2 {
		t.Errorf("Remote = %d, want 2", tally["Remote"])
	}
	if tally[models.AttendancePresent] != 0 || tally[models.AttendanceAbsent] != 0 {
		t.Error("Present and Absent should still be pre-seeded to 0")
	}
}

func TestTallyAttendanceGroupsByEmployee(t *testing.T) {
	records := []models.Attendance{
		{EmployeeID: 1, Date: date("2024-01-05"), Status: models.AttendancePresent},
		{EmployeeID: 2, Date: date("2024-01-05"), Status: models.AttendanceAbsent},
	}

	result := tallyAttendance(records)
	if len(result) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(result))
	}
	if result[1][models.AttendancePresent] != 1 || result[2][models.AttendanceAbsent] != 1 {
		t.Error("counts landed on the wrong employee")
	}
}

func TestSumPayroll(t *testing.T) {
	records := []models.Payroll{
		{EmployeeID: 2, Amount: 500.0, PaymentDate: date("2024-03-01")},
		{EmployeeID: 2, Amount: 300.0, PaymentDate: date("2024-03-15")},
		{EmployeeID: 5, Amount: 1250.5, PaymentDate: date("2024-03-20")},
	}

	result := sumPayroll(records)
	if result[2] != 800.0 {
		t.Errorf("employee 2 total = %v, want 800.0", result[2])
	}
	if result[5] != 1250.5 {
		t.Errorf("employee 5 total = %v, want 1250.5", result[5])
	}
}

func TestSumPayrollEmpty(t *testing.T) {
	result := sumPayroll(nil)
	if len(result) != 0 {
		t.Errorf("expected empty report, got %v", result)
	}
}
