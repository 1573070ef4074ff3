// Package sqlmap shells out to the external SQL-injection scanner.
//
// It contributes two things to a discovery run:
//
//   - Argument builders (DatabasesArgs, TablesArgs, ColumnsArgs) producing
//     the fixed flag sets for each discovery level as discrete argv slices.
//   - ExecRunner, the sqlsweep.Runner implementation backed by os/exec,
//     capturing combined stdout/stderr of the child process.
//
// The scanner's exit status is intentionally ignored; see ExecRunner.Run.
package sqlmap
