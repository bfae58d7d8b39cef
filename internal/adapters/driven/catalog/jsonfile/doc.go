// Package jsonfile reads catalog sections from JSON files on disk and
// watches them for changes.
//
// A catalog file holds either a bare JSON array of sections or an object
// with a "sections" array:
//
//	{"sections": [{"identifier": {...}, "course": {...}, "instructors": [...]}]}
package jsonfile
