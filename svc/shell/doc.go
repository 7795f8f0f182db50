// Package shell implements the interactive command loop of the file cabinet.
//
// A Shell is the application context: it owns references to the record
// store, the export service, the input reader and the output writer, and is
// passed to every command. Commands are matched case-insensitively on the
// first word of a line:
//
//	help [command]      prints the command table or one explanation
//	exit                stops the loop
//	stat                prints "<n> record(s)."
//	create              asks for every field and creates a record
//	list                prints all records
//	edit <id>           asks for every field and replaces record <id>
//	find <field> "<v>"  firstname, lastname or dateofbirth lookup
//	export <fmt> <path> writes csv or xml through the export service
//
// Input comes from a LineReader: TerminalReader (github.com/chzyer/readline,
// with history and completion) for terminals, ScannerReader for pipes and
// tests. End of input and Ctrl-C end the loop like exit.
package shell
