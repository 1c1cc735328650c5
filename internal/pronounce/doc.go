// Package pronounce orchestrates one pronunciation download: look the word
// up, fetch the first result's audio, persist it in the vault and insert an
// embed reference into the active note.
package pronounce
