// Package outcome holds the rules shared by the typed and the status-only
// result variants: the success range of a status code, the default codes,
// error list handling and the debug rendering. Nothing here is exported
// outside the module.
package outcome
