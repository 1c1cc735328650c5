// Package phonetic provides optional IPA transcriptions for looked-up words
// using OpenAI's GPT models, so a note can carry the transcription next to
// the embedded pronunciation audio.
package phonetic
