package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"

	FieldOrganization = "organization"
	FieldProject      = "project"
	FieldSimulationID = "simulation_id"
	FieldRuleSetID    = "rule_set_id"
	FieldClientName   = "client_name"
)
