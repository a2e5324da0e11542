// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - SessionFactory: Opens units of work (internal/services/interfaces.go)
//   - Session: Merge, remove and look up entities inside one unit of work
//   - Transaction: Commit or roll back the write scope of a session
//   - CatalogReader: Read-only access to the whole catalog
//
// ## Trail and Export Interfaces
//
//   - OperationRecorder: Receives the outcome of every mutating library operation
//   - CatalogWriter: Renders a catalog to files (internal/exporters/generic.go)
//   - ExportRecorder: Receives the outcome of every export
//
// ## Background Work Interfaces
//
//   - CatalogExporter, AuditPruner: What the task processors call (internal/tasks)
//   - Enqueuer: Where the scheduler puts due tasks (internal/scheduler)
//
// # Adding a New Export Format
//
// Implement CatalogWriter in internal/exporters/:
//
//	type CSVWriter struct {
//		Dir string
//	}
//
//	func (w *CSVWriter) Write(catalog *entities.Catalog) (services.ExportResult, error)
//
//	var _ CatalogWriter = (*CSVWriter)(nil)
//
// Then pass it to NewCatalogExporter in App.Exporter (internal/entrypoint/app.go).
//
// # Adding a New Store
//
// The library only sees services.SessionFactory. A new store implements
// OpenSession and a Session whose Merge adopts the identity of the stored row
// with the same natural key, then adds:
//
//	var _ services.SessionFactory = (*MyStore)(nil)
//
// # Adding a New Background Task
//
//  1. Define the task type with a Config() backlite.QueueConfig method
//  2. Write a processor and a NewXxxQueue constructor in internal/tasks/
//  3. Register the queue in RunWorkers and add a scheduler.Job for it
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
