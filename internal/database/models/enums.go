package models

// ScheduleStatus defines the lifecycle states of a daily schedule.
// A schedule only ever moves OPEN -> LOCKED and is never unlocked.
type ScheduleStatus string

const (
	ScheduleStatusOpen   ScheduleStatus = "open"
	ScheduleStatusLocked ScheduleStatus = "locked"
)

// ScheduleItemStatus defines the lifecycle states of a schedule item
type ScheduleItemStatus string

const (
	ItemStatusPlanned  ScheduleItemStatus = "planned"
	ItemStatusPresent  ScheduleItemStatus = "present"
	ItemStatusAbsent   ScheduleItemStatus = "absent"
	ItemStatusReplaced ScheduleItemStatus = "replaced"
)

// ReportStatus defines the lifecycle states of a handler report
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusSubmitted ReportStatus = "submitted"
	ReportStatusApproved  ReportStatus = "approved"
	ReportStatusRejected  ReportStatus = "rejected"
)

// NotificationType defines the enumerated event kinds a notification carries
type NotificationType string

const (
	NotificationDutyAssigned     NotificationType = "DUTY_ASSIGNED"
	NotificationEmployeeReplaced NotificationType = "EMPLOYEE_REPLACED"
	NotificationReportSubmitted  NotificationType = "REPORT_SUBMITTED"
	NotificationReportApproved   NotificationType = "REPORT_APPROVED"
	NotificationReportRejected   NotificationType = "REPORT_REJECTED"
)

// EmployeeRole defines the roles relevant to the duty workflow
type EmployeeRole string

const (
	RoleHandler    EmployeeRole = "handler"
	RoleSupervisor EmployeeRole = "supervisor"
	RoleAdmin      EmployeeRole = "admin"
)

// IsValid checks if the ScheduleStatus is valid
func (s ScheduleStatus) IsValid() bool {
	switch s {
	case ScheduleStatusOpen, ScheduleStatusLocked:
		return true
	}
	return false
}

// IsValid checks if the ScheduleItemStatus is valid
func (s ScheduleItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPlanned, ItemStatusPresent, ItemStatusAbsent, ItemStatusReplaced:
		return true
	}
	return false
}

// IsValid checks if the ReportStatus is valid
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusSubmitted, ReportStatusApproved, ReportStatusRejected:
		return true
	}
	return false
}

// IsLive reports whether a report in this status counts against the
// one-live-report-per-(handler, schedule item) invariant. Rejected reports
// are terminal and do not block a fresh report for the same item.
func (s ReportStatus) IsLive() bool {
	switch s {
	case ReportStatusDraft, ReportStatusSubmitted, ReportStatusApproved:
		return true
	}
	return false
}

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationDutyAssigned, NotificationEmployeeReplaced,
		NotificationReportSubmitted, NotificationReportApproved, NotificationReportRejected:
		return true
	}
	return false
}

// IsValid checks if the EmployeeRole is valid
func (r EmployeeRole) IsValid() bool {
	switch r {
	case RoleHandler, RoleSupervisor, RoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the role may lock schedules and review reports
func (r EmployeeRole) CanReview() bool {
	return r == RoleSupervisor || r == RoleAdmin
}
