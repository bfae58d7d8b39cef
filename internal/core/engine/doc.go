// Package engine implements relevance ranking and structured filtering of
// course sections.
//
// Every function is a pure, deterministic function of its arguments: no I/O,
// no shared state and no errors. The engine re-scans the candidate set on
// every call; bounding the cost is the caller's job.
//
// Ranking works per category (code, title, department, course number,
// instructor, description, course area, campus). Each category yields at most
// one match, except instructor and description which yield one fuzzy match
// per matching instructor or token. Scores sum category weights, with exact
// matches multiplied by domain.ExactMultiplier so that any exact hit
// outranks every combination of fuzzy hits.
package engine
