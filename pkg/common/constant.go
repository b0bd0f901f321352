package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyIOTDBType string = "IOT_DB_TYPE"
	EnvKeyIOTDbPath string = "IOT_DB_PATH"

	EnvKeyIOTHttpHostPort string = "IOT_HTTP_HOST_PORT"
	EnvKeyIOTGrpcHostPort string = "IOT_GRPC_HOST_PORT"

	EnvKeyIOTDefaultRate  string = "IOT_DEFAULT_RATE"
	EnvKeyIOTDefaultBurst string = "IOT_DEFAULT_BURST"

	EnvKeyIOTMqttBroker string = "IOT_MQTT_BROKER"
	EnvKeyIOTMqttTopic  string = "IOT_MQTT_TOPIC"

	EnvKeyIOTBroadcastTimeout string = "IOT_BROADCAST_TIMEOUT"

	EnvKeyIOTLogDir string = "IOT_LOG_DIR"

	LoggerNameIOTCore       string = "iot_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameHub           string = "hub"
	LoggerNameMqttIngestor  string = "mqtt_ingestor"

	LoggerFieldIOTCategory        string = "category"
	LoggerCategoryIOTDevice       string = "device"
	LoggerCategoryIOTStatus       string = "status"
	LoggerCategoryIOTAlert        string = "alert"
	LoggerCategoryIOTMaintenance  string = "maintenance"
	LoggerFieldDeviceSerialNumber string = "serial_number"
	LoggerFieldSubscriberID       string = "subscriber_id"
)
