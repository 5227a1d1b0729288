package reporting

// DefaultReporter bundles console, CSV, JSON, Excel and path handling
// behind the combined Reporter interface.
type DefaultReporter struct {
	*DefaultConsoleReporter
	*DefaultCSVReporter
	*DefaultJSONReporter
	*DefaultExcelReporter
	*DefaultPathManager
}

// NewReporter creates a reporter with all default implementations.
func NewReporter() *DefaultReporter {
	return &DefaultReporter{
		DefaultConsoleReporter: NewDefaultConsoleReporter(),
		DefaultCSVReporter:     NewDefaultCSVReporter(),
		DefaultJSONReporter:    NewDefaultJSONReporter(),
		DefaultExcelReporter:   NewDefaultExcelReporter(),
		DefaultPathManager:     NewDefaultPathManager(),
	}
}

var _ Reporter = (*DefaultReporter)(nil)
