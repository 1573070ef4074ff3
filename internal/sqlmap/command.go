package sqlmap

// Argument builders for the three discovery passes. Each returns a discrete
// argv slice; target, database and table names are passed as their own
// elements and never spliced into a shell command line.

// DatabasesArgs builds the argv for the database listing pass.
func DatabasesArgs(target string, extra []string) []string {
	args := []string{"-u", target, "--batch", "--dbs", "--disable-color"}
	return append(args, extra...)
}

// TablesArgs builds the argv for the table listing pass within one database.
func TablesArgs(target, database string, extra []string) []string {
	args := []string{"-u", target, "-D", database, "--batch", "--tables"}
	return append(args, extra...)
}

// ColumnsArgs builds the argv for the column listing pass within one table.
func ColumnsArgs(target, database, table string, extra []string) []string {
	args := []string{"-u", target, "-D", database, "-T", table, "--batch", "--columns"}
	return append(args, extra...)
}
