package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldKey         = "key"
	FieldError       = "error"
	FieldErrorKind   = "error_kind"
	FieldWeekStart   = "week_start"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldID          = "id"
	FieldCount       = "count"
	FieldBackend     = "backend"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentLedger   = "ledger"
	ComponentRollover = "rollover"
	ComponentStorage  = "storage"
	ComponentCache    = "cache"
	ComponentAMQP     = "amqp"
	ComponentBackend  = "backend"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpRead     = "read"
	OpCreate   = "create"
	OpDelete   = "delete"
	OpUpdate   = "update"
	OpList     = "list"
	OpRollover = "rollover"
	OpArchive  = "archive"
	OpPublish  = "publish"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

func (f LogFields) WithKey(key string) LogFields {
	f[FieldKey] = key
	return f
}

// WithError adds the error field; nil errors are skipped.
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithErrorKind(kind string) LogFields {
	f[FieldErrorKind] = kind
	return f
}

func (f LogFields) WithWeekStart(ts string) LogFields {
	f[FieldWeekStart] = ts
	return f
}

// WithTransaction adds the fields identifying one expense or income.
func (f LogFields) WithTransaction(id string, amountCents int64) LogFields {
	f[FieldID] = id
	f[FieldAmountCents] = amountCents
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
