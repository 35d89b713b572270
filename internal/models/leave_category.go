package models

import "strings"

// LeaveCategory enumerates the leave buckets tracked in the summary.
type LeaveCategory int

const (
	LeaveSick LeaveCategory = iota
	LeavePersonal
	LeaveAnnual
	LeaveMarriageBereavement
	LeaveFamilyVisit
	LeaveNursing
	LeaveMaternity
	LeavePaternity
	LeaveChildcare
	LeaveUnknown
)

// leaveKeywordTable maps leave-type keywords to categories, in resolution
// order. The first entry whose keyword occurs anywhere in the free-text leave
// type wins; no match falls into the unknown bucket. Order matters: "产假"
// is a substring of "陪产假", so the earlier entry absorbs both spellings.
var leaveKeywordTable = []struct {
	Keywords []string
	Category LeaveCategory
}{
	{[]string{"病假"}, LeaveSick},
	{[]string{"事假"}, LeavePersonal},
	{[]string{"年休假"}, LeaveAnnual},
	{[]string{"婚", "丧"}, LeaveMarriageBereavement},
	{[]string{"探亲假"}, LeaveFamilyVisit},
	{[]string{"护理假"}, LeaveNursing},
	{[]string{"产假"}, LeaveMaternity},
	{[]string{"陪产假"}, LeavePaternity},
	{[]string{"育儿假"}, LeaveChildcare},
}

// ResolveLeaveCategory dispatches a free-text leave type into exactly one
// category. First matching keyword wins.
func ResolveLeaveCategory(leaveType string) LeaveCategory {
	for _, entry := range leaveKeywordTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(leaveType, kw) {
				return entry.Category
			}
		}
	}
	return LeaveUnknown
}

// Label returns the export column header for the category.
func (c LeaveCategory) Label() string {
	switch c {
	case LeaveSick:
		return "病假"
	case LeavePersonal:
		return "事假"
	case LeaveAnnual:
		return "年休假"
	case LeaveMarriageBereavement:
		return "婚丧假"
	case LeaveFamilyVisit:
		return "探亲假"
	case LeaveNursing:
		return "护理假"
	case LeaveMaternity:
		return "产假"
	case LeavePaternity:
		return "陪产假"
	case LeaveChildcare:
		return "育儿假"
	default:
		return "未知请假类型"
	}
}
