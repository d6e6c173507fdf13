// File: keywords.go
// Title: Tenglish Keyword Table
// Description: Defines the translation table from Telugu keywords to their
//              Python meanings, the multi-word keyword forms, and the
//              builtin function names that pass through untranslated.
//              The table is read-only after package initialization.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-07-18
//
// Change History:
// - 2026-06-14 v0.1.0: Initial keyword table

package parser

// Keyword values carried on TokenKeyword tokens. The marker words aite
// and ki translate to the empty string: they are consumed by the parser
// for their position, never for their value.
const (
	kwIf       = "if"
	kwElse     = "else"
	kwElif     = "elif"
	kwDef      = "def"
	kwReturn   = "return"
	kwIn       = "in"
	kwAnd      = "and"
	kwOr       = "or"
	kwNot      = "not"
	kwTrue     = "True"
	kwFalse    = "False"
	kwBreak    = "break"
	kwContinue = "continue"
	kwWhile    = "while"
	kwPrint    = "print"
	kwMarker   = ""
)

// singleWordKeywords maps each single Telugu keyword to its Python value
var singleWordKeywords = map[string]string{
	"okavela":    kwIf,     // conditional opener
	"lekapothe":  kwElse,   // else branch
	"aite":       kwMarker, // then-marker
	"vidhanam":   kwDef,    // function definition
	"ivvu":       kwReturn, // postfix return
	"lo":         kwIn,     // for-loop iterable marker
	"ki":         kwMarker, // for-loop variable marker
	"mariyu":     kwAnd,
	"leda":       kwOr,
	"avvakapote": kwNot,
	"Nijam":      kwTrue,
	"Abaddam":    kwFalse,
	"aagipo":     kwBreak,
	"cheppu":     kwPrint, // postfix print
}

// multiWordKeyword is a two-word Telugu keyword form. Internal whitespace
// between the words is normalized away during lexing.
type multiWordKeyword struct {
	First  string
	Second string
	Value  string
}

// multiWordKeywords are matched before single-word forms so that
// "lekapothe okavela" lexes as elif rather than else followed by if.
var multiWordKeywords = []multiWordKeyword{
	{First: "lekapothe", Second: "okavela", Value: kwElif},
	{First: "munduku", Second: "vellu", Value: kwContinue},
	{First: "unnanta", Second: "varaku", Value: kwWhile},
}

// builtinFunctions are Python builtins usable directly from Tenglish
// source. They lex as ordinary identifiers and need no translation; the
// set exists for tooling that wants to classify names.
var builtinFunctions = map[string]bool{
	"range":  true,
	"len":    true,
	"append": true,
	"str":    true,
	"int":    true,
	"float":  true,
	"list":   true,
	"dict":   true,
}

// LookupKeyword returns the Python value for a single-word Telugu keyword
// and whether the word is a keyword at all. Marker keywords return the
// empty string with ok set to true.
func LookupKeyword(word string) (string, bool) {
	value, ok := singleWordKeywords[word]
	return value, ok
}

// IsKeyword reports whether word is a single-word Telugu keyword
func IsKeyword(word string) bool {
	_, ok := singleWordKeywords[word]
	return ok
}

// IsBuiltin reports whether name is a pass-through Python builtin
func IsBuiltin(name string) bool {
	return builtinFunctions[name]
}

// multiWordStart reports whether word can begin a multi-word keyword
func multiWordStart(word string) bool {
	for _, mw := range multiWordKeywords {
		if mw.First == word {
			return true
		}
	}
	return false
}

// lookupMultiWord returns the Python value for the two-word form, if any
func lookupMultiWord(first, second string) (string, bool) {
	for _, mw := range multiWordKeywords {
		if mw.First == first && mw.Second == second {
			return mw.Value, true
		}
	}
	return "", false
}
