/*
Package cli provides command-line utilities for the vigil command: output
formatters for assembled documents and common error wrappers.

Output Formatting:

Documents render as indented JSON or YAML:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, rule); err != nil {
		return err
	}

Signal Handling:

Submission to the management API should be cancellable from the terminal:

	ctx := cli.SetupSignalHandler()
	// pass ctx to the client
*/
package cli
