package runner

// Kind identifies which console method produced a record.
type Kind string

// Console method kinds.
const (
	KindLog   Kind = "log"
	KindError Kind = "error"
	KindWarn  Kind = "warn"
	KindInfo  Kind = "info"
)

// Kinds lists every console method in the order they are installed on the
// substitute console object.
var Kinds = []Kind{KindLog, KindError, KindWarn, KindInfo}

// IsValid reports whether k is one of the four console kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindLog, KindError, KindWarn, KindInfo:
		return true
	}
	return false
}

// Record is one captured console call.
type Record struct {
	Kind    Kind
	Message string
}

// Result holds the records of a single Execute call in call order.
type Result struct {
	Records []Record
}

// HasError reports whether any record is of kind error.
func (r Result) HasError() bool {
	for _, rec := range r.Records {
		if rec.Kind == KindError {
			return true
		}
	}
	return false
}
