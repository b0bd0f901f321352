package models

import "time"

type Device struct {
	SerialNumber      int                `gorm:"primaryKey;autoIncrement:false" json:"serial_number"`
	Type              DeviceType         `gorm:"type:varchar(32);not null;index" json:"type"`
	SoftwareVersion   SoftwareVersion    `gorm:"type:varchar(8);not null" json:"software_version"`
	Image             string             `gorm:"not null" json:"image"`
	InitialState      InitialState       `gorm:"type:varchar(16);not null" json:"initial_state"`
	MacAddress        string             `gorm:"uniqueIndex;not null" json:"mac_address"`
	OperationalStatus OperationalStatus  `gorm:"type:varchar(16);not null" json:"operational_status"`
	Status            ConnectivityStatus `gorm:"type:varchar(8);not null" json:"status"`
	BatteryLevel      int                `gorm:"not null" json:"battery_level"`
	CreationDate      time.Time          `gorm:"not null" json:"creation_date"`
	UserID            *int               `json:"user_id"`

	MemoryUsage float64 `gorm:"column:memory_usage" json:"memory_usage"`
	CPUUsage    float64 `gorm:"column:cpu_usage" json:"cpu_usage"`
	Temperature float64 `gorm:"column:temperature" json:"temperature"`

	Components    []Component    `gorm:"foreignKey:DeviceSerialNumber;references:SerialNumber;constraint:OnDelete:CASCADE" json:"components,omitempty"`
	Alerts        []Alert        `gorm:"foreignKey:DeviceSerialNumber;references:SerialNumber;constraint:OnDelete:CASCADE" json:"-"`
	Positions     []Position     `gorm:"foreignKey:DeviceSerialNumber;references:SerialNumber;constraint:OnDelete:CASCADE" json:"-"`
	Interventions []Intervention `gorm:"foreignKey:DeviceSerialNumber;references:SerialNumber;constraint:OnDelete:CASCADE" json:"-"`
}

// Component types are free text and not unique per device; lookups take the
// lowest id for a given type.
type Component struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	DeviceSerialNumber int             `gorm:"index;not null" json:"device_serial_number"`
	Type               string          `gorm:"not null" json:"type"`
	Status             ComponentStatus `gorm:"type:varchar(16);not null;default:ok;check:status IN ('ok','en panne','erreur')" json:"status"`
}

type Alert struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	DeviceSerialNumber int       `gorm:"index;not null" json:"device_serial_number"`
	Message            string    `gorm:"not null" json:"message"`
	Type               AlertType `gorm:"type:varchar(32);not null;check:type IN ('battery low','connection lost','component error','component out of order','en maintenance','system overload','memory overload','high temperature')" json:"type"`
	Date               time.Time `gorm:"index;not null" json:"date"`
}

type Position struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	DeviceSerialNumber  int       `gorm:"index;not null" json:"device_serial_number"`
	Latitude            float64   `gorm:"not null" json:"latitude"`
	Longitude           float64   `gorm:"not null" json:"longitude"`
	Altitude            *float64  `json:"altitude"`
	OccupationTimestamp time.Time `gorm:"not null" json:"occupation_timestamp"`
	PositionName        *string   `json:"position_name"`
}

type Intervention struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	DeviceSerialNumber int                `gorm:"index;not null" json:"device_serial_number"`
	Type               InterventionType   `gorm:"type:varchar(16);not null" json:"type"`
	Date               time.Time          `gorm:"not null" json:"date"`
	Note               *string            `json:"note"`
	Status             InterventionStatus `gorm:"type:varchar(16);not null" json:"status"`
	EstimatedDuration  *string            `json:"estimated_duration"`

	Failures []Failure `gorm:"foreignKey:InterventionID;constraint:OnDelete:CASCADE" json:"failures"`
}

type Failure struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	InterventionID uint          `gorm:"index;not null" json:"intervention_id"`
	FailureType    string        `gorm:"not null" json:"failure_type"`
	Status         FailureStatus `gorm:"type:varchar(16);not null" json:"status"`
}
