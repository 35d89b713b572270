package models

import (
	"time"

	"attendance-analyzer/pkg/identity"
)

// Attendance status literals as they arrive from the badge/OA systems.
const (
	StatusNormal   = "正常出勤" // normal attendance
	StatusAbnormal = "异常"   // abnormal (OA punches outside the cutoffs)
	StatusAbsent   = "缺勤"   // absence-equivalent, forced for short guesthouse spans
	StatusLate     = "迟到"   // lateness marker inside free-text pc status
	StatusEarly    = "早退"   // early-leave marker inside free-text pc status
)

// AttendanceDay is the central mutable record: exactly one exists per
// (employee id, calendar date) pair over the analysis window. Identity fields
// are set at template build time and never change; the evidence fields start
// empty and are set by the source fillers; Anomalous is set only by the
// classifier.
type AttendanceDay struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	EmployeeID string    `gorm:"size:8;not null;index:idx_emp_date" json:"employee_id"`
	Department string    `json:"department"`
	Date       time.Time `gorm:"type:date;not null;index:idx_emp_date" json:"date"`

	PCStatus          string  `gorm:"type:varchar(20)" json:"pc_status"`
	OAStatus          string  `gorm:"type:varchar(20)" json:"oa_status"`
	OAPunched         bool    `gorm:"not null;default:false" json:"oa_punched"`
	OffSiteRegistered bool    `gorm:"not null;default:false" json:"off_site_registered"`
	LeaveRecorded     bool    `gorm:"not null;default:false" json:"leave_recorded"`
	LeaveType         string  `json:"leave_type"`
	LeaveDayFraction  float64 `gorm:"not null;default:0" json:"leave_day_fraction"`
	TripRecorded      bool    `gorm:"not null;default:false" json:"trip_recorded"`
	TripLocation      string  `json:"trip_location"`
	ShiftAttended     bool    `gorm:"not null;default:false" json:"shift_attended"`
	OvertimeHours     int     `gorm:"not null;default:0" json:"overtime_hours"`
	Anomalous         bool    `gorm:"not null;default:false" json:"anomalous"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceDay) TableName() string {
	return "attendance_days"
}

// DateKey returns the canonical "2006-01-02" form of the record's date.
func (d *AttendanceDay) DateKey() string {
	return identity.FormatDate(d.Date)
}

// AllEmpty reports whether no evidence source touched this day at all.
func (d *AttendanceDay) AllEmpty() bool {
	return d.PCStatus == "" &&
		d.OAStatus == "" &&
		!d.OffSiteRegistered &&
		!d.LeaveRecorded &&
		!d.OAPunched &&
		!d.TripRecorded &&
		!d.ShiftAttended
}

// PCNormal reports whether the day counts as normal via the badge system: an
// approved off-site registration counts the same as a literal normal status.
func (d *AttendanceDay) PCNormal() bool {
	return d.OffSiteRegistered || d.PCStatus == StatusNormal
}

// OANormal reports whether the OA punch pair satisfied both cutoffs.
func (d *AttendanceDay) OANormal() bool {
	return d.OAStatus == StatusNormal
}
