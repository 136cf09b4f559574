package entity

import "time"

// ProductionJob is one canonical manufacturing-job row in the `production`
// table. WIPStep, DelayHours, DelayStatus and PartID are derived. PartID is
// assigned by the cross-domain linker and carries no referential guarantee
// beyond membership in the inventory part-ID set (or the UNKNOWN sentinel).
type ProductionJob struct {
	JobID          string     `gorm:"column:Job_ID;primaryKey" json:"job_id"`
	MachineID      string     `gorm:"column:Machine_ID" json:"machine_id"`
	OperationType  string     `gorm:"column:Operation_Type" json:"operation_type"`
	JobStatus      string     `gorm:"column:Job_Status" json:"job_status"`
	ProcessingTime float64    `gorm:"column:Processing_Time;not null;default:0" json:"processing_time"`
	ScheduledStart *time.Time `gorm:"column:Scheduled_Start" json:"scheduled_start"`
	ScheduledEnd   *time.Time `gorm:"column:Scheduled_End" json:"scheduled_end"`
	ActualStart    *time.Time `gorm:"column:Actual_Start" json:"actual_start"`
	ActualEnd      *time.Time `gorm:"column:Actual_End" json:"actual_end"`
	WIPStep        string     `gorm:"column:WIP_Step" json:"wip_step"`
	DelayHours     *float64   `gorm:"column:Delay_Hours" json:"delay_hours"`
	DelayStatus    string     `gorm:"column:Delay_Status" json:"delay_status"`
	PartID         string     `gorm:"column:Part_ID" json:"part_id"`

	Extras map[string]string `gorm:"-" json:"extras,omitempty"`
}

func (ProductionJob) TableName() string {
	return "production"
}

// Delay status values. StatusUnknown covers rows where either timestamp
// failed to parse, so the delay comparison is indeterminate.
const (
	StatusDelayed = "Delayed"
	StatusOnTime  = "On Time"
	StatusUnknown = "Unknown"
)

// JobStatus values referenced by reports.
const (
	JobStatusPending = "Pending"
	JobStatusFailed  = "Failed"
)

// PartUnknown is assigned when the inventory table is empty and no part IDs
// exist to draw from.
const PartUnknown = "UNKNOWN"
