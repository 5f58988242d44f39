package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldDate     = "date"
	FieldSlot     = "slot"
	FieldStaff    = "staff"
	FieldClient   = "client"
	FieldService  = "service"
	FieldTable    = "table"
	FieldRowCount = "row_count"
	FieldGuarded  = "guarded"
	FieldNetCents = "net_cents"
	FieldBackend  = "backend"
	FieldUser     = "user"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStore   = "store"
	ComponentSheets  = "sheets"
	ComponentStorage = "storage"
	ComponentLedger  = "ledger"
	ComponentSession = "session"
	ComponentAMQP    = "amqp"
	ComponentAuth    = "auth"
	ComponentBackend = "backend"
)

// Standard operation names.
const (
	OpLoad      = "load"
	OpSave      = "save"
	OpReconcile = "reconcile"
	OpLogin     = "login"
	OpLogout    = "logout"
	OpRead      = "read"
	OpReplace   = "replace"
	OpPublish   = "publish"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
