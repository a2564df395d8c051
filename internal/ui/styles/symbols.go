package styles

// Result symbols for the check command.
const (
	SymbolOK   = "✓"
	SymbolFail = "✗"
)

// FormatResult renders the check outcome as a colored symbol.
func FormatResult(ok bool) string {
	if ok {
		return SuccessStyle.Render(SymbolOK)
	}
	return ErrorStyle.Render(SymbolFail)
}
