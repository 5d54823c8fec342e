package reporters

var (
	PadToWidth   = padToWidth
	ColumnWidths = columnWidths
	ResultRow    = resultRow
	SeverityRank = severityRank
	CollapseHome = collapseHome
	DimBorders   = dimBorders
)
