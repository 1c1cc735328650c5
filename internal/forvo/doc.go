// Package forvo implements the client for the Forvo pronunciation lookup
// service: building segment-path query URLs, decoding the JSON response
// envelope and fetching the raw audio bytes of a pronunciation.
package forvo
