package models

import "time"

// PersonSummary accumulates the per-person counters produced by the single
// classification pass. Counters only ever increase; the classifier creates one
// summary lazily on the first AttendanceDay it sees for an employee.
type PersonSummary struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	EmployeeID string `gorm:"size:8;not null;uniqueIndex" json:"employee_id"`
	Department string `json:"department"`

	NormalDays     float64 `gorm:"not null;default:0" json:"normal_days"`
	TripDays       int     `gorm:"not null;default:0" json:"trip_days"`
	LateDays       int     `gorm:"not null;default:0" json:"late_days"`
	EarlyLeaveDays int     `gorm:"not null;default:0" json:"early_leave_days"`
	AbsenceDays    int     `gorm:"not null;default:0" json:"absence_days"`
	NoShowDays     int     `gorm:"not null;default:0" json:"no_show_days"`

	SickLeaveDays       float64 `gorm:"not null;default:0" json:"sick_leave_days"`
	PersonalLeaveDays   float64 `gorm:"not null;default:0" json:"personal_leave_days"`
	AnnualLeaveDays     float64 `gorm:"not null;default:0" json:"annual_leave_days"`
	MarriageFuneralDays float64 `gorm:"not null;default:0" json:"marriage_funeral_days"`
	FamilyVisitDays     float64 `gorm:"not null;default:0" json:"family_visit_days"`
	NursingLeaveDays    float64 `gorm:"not null;default:0" json:"nursing_leave_days"`
	MaternityDays       float64 `gorm:"not null;default:0" json:"maternity_days"`
	PaternityDays       float64 `gorm:"not null;default:0" json:"paternity_days"`
	ChildcareDays       float64 `gorm:"not null;default:0" json:"childcare_days"`
	UnknownLeaveDays    float64 `gorm:"not null;default:0" json:"unknown_leave_days"`

	OvertimeHours      int `gorm:"not null;default:0" json:"overtime_hours"`
	HolidayWorkedDays  int `gorm:"not null;default:0" json:"holiday_worked_days"`
	AbsenceOrLeaveDays int `gorm:"not null;default:0" json:"absence_or_leave_days"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PersonSummary) TableName() string {
	return "person_summaries"
}

// AddLeave credits a fractional leave day to exactly one category bucket.
func (s *PersonSummary) AddLeave(category LeaveCategory, days float64) {
	switch category {
	case LeaveSick:
		s.SickLeaveDays += days
	case LeavePersonal:
		s.PersonalLeaveDays += days
	case LeaveAnnual:
		s.AnnualLeaveDays += days
	case LeaveMarriageBereavement:
		s.MarriageFuneralDays += days
	case LeaveFamilyVisit:
		s.FamilyVisitDays += days
	case LeaveNursing:
		s.NursingLeaveDays += days
	case LeaveMaternity:
		s.MaternityDays += days
	case LeavePaternity:
		s.PaternityDays += days
	case LeaveChildcare:
		s.ChildcareDays += days
	default:
		s.UnknownLeaveDays += days
	}
}

// LeaveDays returns the credited days for a category, mostly for tests and
// export ordering.
func (s *PersonSummary) LeaveDays(category LeaveCategory) float64 {
	switch category {
	case LeaveSick:
		return s.SickLeaveDays
	case LeavePersonal:
		return s.PersonalLeaveDays
	case LeaveAnnual:
		return s.AnnualLeaveDays
	case LeaveMarriageBereavement:
		return s.MarriageFuneralDays
	case LeaveFamilyVisit:
		return s.FamilyVisitDays
	case LeaveNursing:
		return s.NursingLeaveDays
	case LeaveMaternity:
		return s.MaternityDays
	case LeavePaternity:
		return s.PaternityDays
	case LeaveChildcare:
		return s.ChildcareDays
	default:
		return s.UnknownLeaveDays
	}
}

// IsValid checks the counters are not negative.
func (s *PersonSummary) IsValid() bool {
	if s.EmployeeID == "" {
		return false
	}
	if s.TripDays < 0 || s.LateDays < 0 || s.EarlyLeaveDays < 0 ||
		s.AbsenceDays < 0 || s.NoShowDays < 0 || s.OvertimeHours < 0 {
		return false
	}
	return true
}
