// Package ui provides terminal styling for termstat's CLI output.
//
// The table itself is plain text; this package only decorates it when the
// output is a color terminal. HeaderStyler returns a function that colors a
// rendered header without changing its cell width, so rows printed below it
// stay aligned:
//
//	style := ui.HeaderStyler(ui.StyleAuto, ui.IsTerminal(os.Stdout))
//	fmt.Println(style(tbl.Header()))
//
// # Color Scheme
//
// Colors are basic ANSI codes for broad terminal compatibility:
//
//	ColorPrimary   - group labels (bold)
//	ColorSecondary - field names
//	ColorMuted     - the "|" group separators
//
// With StylePlain, or StyleAuto on a non-terminal, headers pass through
// unchanged.
package ui
