package migrate

// createTransactionsTable sets up the table holding all ledger entries. Each
// row records a single transfer between a debitor and a creditor account.
func createTransactionsTable() *Migration {
	return &Migration{
		Version:     20260119,
		Description: "create transactions table",
		Direction:   MigrationUp,
		Script: `CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    debitor TEXT NOT NULL,
    debit REAL NOT NULL,
    creditor TEXT NOT NULL,
    credit REAL NOT NULL,
    timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);`,
	}
}
