package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLeaveCategory(t *testing.T) {
	cases := []struct {
		leaveType string
		want      LeaveCategory
	}{
		{"病假3天", LeaveSick},
		{"事假", LeavePersonal},
		{"年休假5天", LeaveAnnual},
		{"婚假", LeaveMarriageBereavement},
		{"丧假", LeaveMarriageBereavement},
		{"探亲假", LeaveFamilyVisit},
		{"护理假", LeaveNursing},
		{"产假98天", LeaveMaternity},
		{"育儿假", LeaveChildcare},
		{"调休", LeaveUnknown},
		{"", LeaveUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveLeaveCategory(tc.leaveType), tc.leaveType)
	}
}

func TestResolveLeaveCategoryFirstMatchWins(t *testing.T) {
	// "陪产假" contains "产假", and the maternity entry is resolved first;
	// this mirrors the tallies payroll staff have been signing off on.
	assert.Equal(t, LeaveMaternity, ResolveLeaveCategory("陪产假15天"))
}

func TestLeaveCategoryLabels(t *testing.T) {
	assert.Equal(t, "病假", LeaveSick.Label())
	assert.Equal(t, "未知请假类型", LeaveUnknown.Label())
}

func TestAddLeaveCreditsSingleBucket(t *testing.T) {
	var s PersonSummary
	s.AddLeave(LeavePersonal, 0.5)
	s.AddLeave(LeavePersonal, 1)
	s.AddLeave(LeaveUnknown, 2)

	assert.Equal(t, 1.5, s.PersonalLeaveDays)
	assert.Equal(t, 2.0, s.UnknownLeaveDays)
	assert.Zero(t, s.SickLeaveDays)
	assert.Equal(t, 1.5, s.LeaveDays(LeavePersonal))
}

func TestAttendanceDayAllEmpty(t *testing.T) {
	var d AttendanceDay
	assert.True(t, d.AllEmpty())

	d.OAPunched = true
	assert.False(t, d.AllEmpty())
}

func TestAttendanceDayPCNormal(t *testing.T) {
	var d AttendanceDay
	assert.False(t, d.PCNormal())

	d.PCStatus = StatusNormal
	assert.True(t, d.PCNormal())

	d.PCStatus = ""
	d.OffSiteRegistered = true
	assert.True(t, d.PCNormal())
}

func TestPathSegment(t *testing.T) {
	assert.Equal(t, "一级部", PathSegment("一级部/二级部/三级部", 0))
	assert.Equal(t, "二级部", PathSegment("一级部/二级部/三级部", 1))
	assert.Equal(t, "", PathSegment("一级部", 1))
}
