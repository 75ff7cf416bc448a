package migrate

// registered enumerates every known migration. Adding a schema change means
// appending one more entry here; Collect handles the ordering.
func registered() []*Migration {
	return []*Migration{
		createTransactionsTable(),
	}
}
