package models

import "github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"

const (
	DefaultMemoryUsage = 0.0
	DefaultCPUUsage    = 0.0
	DefaultTemperature = 25.0
)

type ComponentStatusUpdate struct {
	Type   string `json:"type" zog:"type"`
	Status string `json:"status" zog:"status"`
}

// StatusUpdate is the telemetry payload accepted by every ingestion transport
// and pushed verbatim (after normalization) to live subscribers. BatteryLevel
// and Components stay nil when the field is absent so a missing reading can
// be told apart from 0 or an empty list.
type StatusUpdate struct {
	SerialNumber      int                     `json:"serial_number" zog:"serial_number"`
	OperationalStatus string                  `json:"operational_status" zog:"operational_status"`
	Status            string                  `json:"status" zog:"status"`
	BatteryLevel      *int                    `json:"battery_level" zog:"battery_level"`
	Components        []ComponentStatusUpdate `json:"components" zog:"components"`
	MemoryUsage       float64                 `json:"memory_usage" zog:"memory_usage"`
	CPUUsage          float64                 `json:"cpu_usage" zog:"cpu_usage"`
	Temperature       float64                 `json:"temperature" zog:"temperature"`
}

// NewStatusUpdate returns a payload pre-filled with the optional field
// defaults; decode the request body into it.
func NewStatusUpdate() *StatusUpdate {
	return &StatusUpdate{
		MemoryUsage: DefaultMemoryUsage,
		CPUUsage:    DefaultCPUUsage,
		Temperature: DefaultTemperature,
	}
}

type ComponentReading struct {
	Type   string
	Status ComponentStatus
}

// Snapshot is a parsed StatusUpdate carrying canonical enum values.
type Snapshot struct {
	SerialNumber      int
	OperationalStatus OperationalStatus
	Status            ConnectivityStatus
	BatteryLevel      int
	Components        []ComponentReading
	MemoryUsage       float64
	CPUUsage          float64
	Temperature       float64
}

func (s *Snapshot) StatusUpdate() *StatusUpdate {
	batteryLevel := s.BatteryLevel
	return &StatusUpdate{
		SerialNumber:      s.SerialNumber,
		OperationalStatus: string(s.OperationalStatus),
		Status:            string(s.Status),
		BatteryLevel:      &batteryLevel,
		Components: common.Mapper(s.Components, func(c ComponentReading) ComponentStatusUpdate {
			return ComponentStatusUpdate{Type: c.Type, Status: string(c.Status)}
		}),
		MemoryUsage:       s.MemoryUsage,
		CPUUsage:          s.CPUUsage,
		Temperature:       s.Temperature,
	}
}

const (
	DefaultPageLimit = 10
)

type DeviceFilter struct {
	Limit  int
	Offset int
	Type   DeviceType
}

type AlertFilter struct {
	Limit  int
	Offset int
	Type   AlertType
}
