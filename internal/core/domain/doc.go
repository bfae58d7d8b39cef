// Package domain holds the catalog types shared by every layer:
//
//   - Section: one scheduled offering of a course
//   - TermIdentifier: the term a section runs in, written like FA2023
//   - MatchCategory and Match: which part of a section a query hit, and its weight
//   - Filter: a key:value constraint such as dept:CSCI
//
// It imports only the standard library.
package domain
