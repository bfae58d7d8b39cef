// Package driven holds the interfaces services use to reach storage and
// files.
//
//   - SectionStore keeps imported sections per term plus the import log.
//     Backed by SQLite or memory.
//   - ConfigStore reads and writes settings.
//   - CatalogReader loads sections from a catalog export. Only import and
//     watch use it.
//
// This package imports domain and nothing else from internal/.
package driven
