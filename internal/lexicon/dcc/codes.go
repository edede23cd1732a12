package dcc

import (
	"github.com/autocom/glossa/internal/lexicon"
	"github.com/autocom/glossa/internal/lexicon/greek"
)

// The core list spells its classification columns out in full.

var posCodes = map[string]lexicon.PartOfSpeech{
	"noun":         lexicon.Noun,
	"verb":         lexicon.Verb,
	"adjective":    lexicon.Adjective,
	"adverb":       lexicon.Adverb,
	"preposition":  lexicon.Preposition,
	"conjunction":  lexicon.Conjunction,
	"pronoun":      lexicon.Pronoun,
	"interjection": lexicon.Interjection,
	"particle":     lexicon.Adverb,
}

var genderCodes = map[string]lexicon.Gender{
	"masculine": lexicon.Masculine,
	"feminine":  lexicon.Feminine,
	"neuter":    lexicon.Neuter,
	"common":    lexicon.Common,
}

var stemTypes = map[string]greek.StemType{
	"omega":      greek.Omega,
	"contract":   greek.Contract,
	"mi":         greek.Mi,
	"decl1eta":   greek.Decl1Eta,
	"decl1alpha": greek.Decl1Alpha,
	"decl2":      greek.Decl2,
	"decl2n":     greek.Decl2N,
	"decl3":      greek.Decl3,
	"adj12":      greek.Adj12,
	"adj3":       greek.Adj3,
	"indecl":     greek.Indecl,
}

func partOfSpeech(pos string) lexicon.PartOfSpeech {
	if p, ok := posCodes[pos]; ok {
		return p
	}
	return lexicon.UnknownPOS
}
