// Package file provides file-based configuration and prompt storage.
//
// Configuration lives in a TOML file under ~/.noteloom/ and prompt
// templates in user-editable text files under ~/.noteloom/prompts/.
package file
