// Package vault implements the host collaborators of the note-taking
// application as plain files: binary storage under the vault root and a
// markdown note acting as the editing surface for embed references.
package vault
