package models

// otherPlaceholder fills every attribute of the synthetic bucket that
// absorbs span volume not covered by any visible group.
const otherPlaceholder = "(other)"

// Attributes is the fixed grouping schema for span counts. Upstream groups
// spans by exactly these attributes; rules may target any of them by the
// JSON name (e.g. "status_code", "transaction.op").
type Attributes struct {
	Operation         string `json:"operation,omitempty"`
	Description       string `json:"description,omitempty"`
	Status            string `json:"status,omitempty"`
	StatusCode        string `json:"status_code,omitempty"`
	Domain            string `json:"domain,omitempty"`
	Action            string `json:"action,omitempty"`
	Module            string `json:"module,omitempty"`
	System            string `json:"system,omitempty"`
	Transaction       string `json:"transaction,omitempty"`
	TransactionOp     string `json:"transaction.op,omitempty"`
	TransactionMethod string `json:"transaction.method,omitempty"`
	Environment       string `json:"environment,omitempty"`
	Release           string `json:"release,omitempty"`
}

var attributeNames = [...]string{
	"operation",
	"description",
	"status",
	"status_code",
	"domain",
	"action",
	"module",
	"system",
	"transaction",
	"transaction.op",
	"transaction.method",
	"environment",
	"release",
}

// AttributeNames returns the attribute names rules may target, in schema order.
func AttributeNames() []string {
	names := attributeNames
	return names[:]
}

// IsAttributeName reports whether name is one of the schema attributes.
func IsAttributeName(name string) bool {
	for _, known := range attributeNames {
		if known == name {
			return true
		}
	}
	return false
}

// Value looks up an attribute by its JSON name. The second return is false
// for names outside the schema.
func (a Attributes) Value(name string) (string, bool) {
	switch name {
	case "operation":
		return a.Operation, true
	case "description":
		return a.Description, true
	case "status":
		return a.Status, true
	case "status_code":
		return a.StatusCode, true
	case "domain":
		return a.Domain, true
	case "action":
		return a.Action, true
	case "module":
		return a.Module, true
	case "system":
		return a.System, true
	case "transaction":
		return a.Transaction, true
	case "transaction.op":
		return a.TransactionOp, true
	case "transaction.method":
		return a.TransactionMethod, true
	case "environment":
		return a.Environment, true
	case "release":
		return a.Release, true
	default:
		return "", false
	}
}

// OtherAttributes returns the placeholder attribute set for the synthetic
// "(other)" bucket appended during total reconciliation.
func OtherAttributes() Attributes {
	return Attributes{
		Operation:         otherPlaceholder,
		Description:       otherPlaceholder,
		Status:            otherPlaceholder,
		StatusCode:        otherPlaceholder,
		Domain:            otherPlaceholder,
		Action:            otherPlaceholder,
		Module:            otherPlaceholder,
		System:            otherPlaceholder,
		Transaction:       otherPlaceholder,
		TransactionOp:     otherPlaceholder,
		TransactionMethod: otherPlaceholder,
		Environment:       otherPlaceholder,
		Release:           otherPlaceholder,
	}
}
