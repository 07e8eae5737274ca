package services

import "strings"

// profaneWords are masked in chirp bodies. Matching is case-insensitive and
// whole-word only; punctuation attached to a word defeats the match, which is
// the intended behavior.
var profaneWords = map[string]struct{}{
	"kerfuffle": {},
	"sharbert":  {},
	"fornax":    {},
}

const profanityMask = "****"

// cleanChirp replaces profane words with the mask while preserving the
// original casing and spacing of everything else.
func cleanChirp(body string) string {
	words := strings.Split(strings.TrimSpace(body), " ")
	for i, word := range words {
		if _, ok := profaneWords[strings.ToLower(word)]; ok {
			words[i] = profanityMask
		}
	}
	return strings.Join(words, " ")
}
