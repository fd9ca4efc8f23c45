package models

type ReconcileAction string

const (
	ReconcileActionAppended ReconcileAction = "appended"
	ReconcileActionReplaced ReconcileAction = "replaced"
)

// ReconcileResult records the write done for one mapping pair.
type ReconcileResult struct {
	Account string
	Sheet   string
	Date    string
	Action  ReconcileAction
	// Row is the 1-based row replaced, zero for appends.
	Row    int
	Values HoldingRow
}
