package models

import (
	"fmt"
	"strings"
)

type DeviceType string

const (
	DeviceTypeSmartBelt         DeviceType = "ceinture intelligente"
	DeviceTypeVibratingBelt     DeviceType = "ceinture vibrante"
	DeviceTypeBelt              DeviceType = "ceinture normal"
	DeviceTypeSmartBracelet     DeviceType = "bracelet intelligent"
	DeviceTypeVibratingBracelet DeviceType = "bracelet vibrant"
	DeviceTypeBracelet          DeviceType = "bracelet normal"
	DeviceTypeSmartGlasses      DeviceType = "lunettes intelligentes"
	DeviceTypeLidarGlasses      DeviceType = "lunettes lidar"
	DeviceTypeGlasses           DeviceType = "lunettes normal"
	DeviceTypeSmartHeadset      DeviceType = "casque audio intelligent"
	DeviceTypeHeadset           DeviceType = "casque normal"
)

var DeviceTypes = []DeviceType{
	DeviceTypeSmartBelt, DeviceTypeVibratingBelt, DeviceTypeBelt,
	DeviceTypeSmartBracelet, DeviceTypeVibratingBracelet, DeviceTypeBracelet,
	DeviceTypeSmartGlasses, DeviceTypeLidarGlasses, DeviceTypeGlasses,
	DeviceTypeSmartHeadset, DeviceTypeHeadset,
}

type SoftwareVersion string

const (
	SoftwareVersion1_0 SoftwareVersion = "1.0"
	SoftwareVersion1_1 SoftwareVersion = "1.1"
	SoftwareVersion1_2 SoftwareVersion = "1.2"
	SoftwareVersion2_0 SoftwareVersion = "2.0"
)

var SoftwareVersions = []SoftwareVersion{SoftwareVersion1_0, SoftwareVersion1_1, SoftwareVersion1_2, SoftwareVersion2_0}

type InitialState string

const (
	InitialStateNew           InitialState = "neuf"
	InitialStateReconditioned InitialState = "reconditionné"
	InitialStateDefective     InitialState = "défectueux"
)

var InitialStates = []InitialState{InitialStateNew, InitialStateReconditioned, InitialStateDefective}

type OperationalStatus string

const (
	OperationalStatusInService   OperationalStatus = "en service"
	OperationalStatusStandby     OperationalStatus = "en veille"
	OperationalStatusMaintenance OperationalStatus = "en maintenance"
)

var OperationalStatuses = []OperationalStatus{OperationalStatusInService, OperationalStatusStandby, OperationalStatusMaintenance}

// ConnectivityStatus is stored in the device "status" column.
type ConnectivityStatus string

const (
	ConnectivityActive   ConnectivityStatus = "active"
	ConnectivityInactive ConnectivityStatus = "inactive"
)

var ConnectivityStatuses = []ConnectivityStatus{ConnectivityActive, ConnectivityInactive}

type ComponentStatus string

const (
	ComponentStatusOK         ComponentStatus = "ok"
	ComponentStatusOutOfOrder ComponentStatus = "en panne"
	ComponentStatusError      ComponentStatus = "erreur"
)

var ComponentStatuses = []ComponentStatus{ComponentStatusOK, ComponentStatusOutOfOrder, ComponentStatusError}

type AlertType string

const (
	AlertTypeBatteryLow          AlertType = "battery low"
	AlertTypeConnectionLost      AlertType = "connection lost"
	AlertTypeComponentError      AlertType = "component error"
	AlertTypeComponentOutOfOrder AlertType = "component out of order"
	AlertTypeEnMaintenance       AlertType = "en maintenance"
	AlertTypeSystemOverload      AlertType = "system overload"
	AlertTypeMemoryOverload      AlertType = "memory overload"
	AlertTypeHighTemperature     AlertType = "high temperature"
)

var AlertTypes = []AlertType{
	AlertTypeBatteryLow, AlertTypeConnectionLost, AlertTypeComponentError, AlertTypeComponentOutOfOrder,
	AlertTypeEnMaintenance, AlertTypeSystemOverload, AlertTypeMemoryOverload, AlertTypeHighTemperature,
}

type InterventionType string

const (
	InterventionTypePreventive InterventionType = "préventive"
	InterventionTypeCurative   InterventionType = "curative"
)

var InterventionTypes = []InterventionType{InterventionTypePreventive, InterventionTypeCurative}

type InterventionStatus string

const (
	InterventionStatusPending    InterventionStatus = "en attente"
	InterventionStatusInProgress InterventionStatus = "en cours"
	InterventionStatusCompleted  InterventionStatus = "terminé"
	InterventionStatusPostponed  InterventionStatus = "reporté"
	InterventionStatusCanceled   InterventionStatus = "annulé"
)

var InterventionStatuses = []InterventionStatus{
	InterventionStatusPending, InterventionStatusInProgress, InterventionStatusCompleted,
	InterventionStatusPostponed, InterventionStatusCanceled,
}

type FailureStatus string

const (
	FailureStatusResolved   FailureStatus = "résolu"
	FailureStatusUnresolved FailureStatus = "non résolu"
)

var FailureStatuses = []FailureStatus{FailureStatusResolved, FailureStatusUnresolved}

// ParseEnum maps raw onto the canonical member of values, ignoring case and
// surrounding blanks.
func ParseEnum[T ~string](raw string, values []T) (T, error) {
	normalized := strings.TrimSpace(raw)
	for _, v := range values {
		if strings.EqualFold(normalized, string(v)) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, expected one of %v", raw, values)
}

func ParseDeviceType(raw string) (DeviceType, error) { return ParseEnum(raw, DeviceTypes) }

func ParseSoftwareVersion(raw string) (SoftwareVersion, error) {
	return ParseEnum(raw, SoftwareVersions)
}

func ParseInitialState(raw string) (InitialState, error) { return ParseEnum(raw, InitialStates) }

func ParseOperationalStatus(raw string) (OperationalStatus, error) {
	return ParseEnum(raw, OperationalStatuses)
}

func ParseConnectivityStatus(raw string) (ConnectivityStatus, error) {
	return ParseEnum(raw, ConnectivityStatuses)
}

func ParseComponentStatus(raw string) (ComponentStatus, error) {
	return ParseEnum(raw, ComponentStatuses)
}

func ParseAlertType(raw string) (AlertType, error) { return ParseEnum(raw, AlertTypes) }

func ParseInterventionType(raw string) (InterventionType, error) {
	return ParseEnum(raw, InterventionTypes)
}

func ParseInterventionStatus(raw string) (InterventionStatus, error) {
	return ParseEnum(raw, InterventionStatuses)
}

func ParseFailureStatus(raw string) (FailureStatus, error) { return ParseEnum(raw, FailureStatuses) }
