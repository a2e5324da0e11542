package interfaces

// This file contains compile-time interface implementation checks.
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mikestefanello/backlite"

	"github.com/cebix/library/internal/audit"
	"github.com/cebix/library/internal/cli"
	"github.com/cebix/library/internal/database"
	"github.com/cebix/library/internal/exporters"
	"github.com/cebix/library/internal/library"
	"github.com/cebix/library/internal/scheduler"
	"github.com/cebix/library/internal/services"
	"github.com/cebix/library/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.SessionFactory = (*database.Database)(nil)
var _ services.Session = (*database.Session)(nil)

// =============================================================================
// Library
// =============================================================================

var _ services.CatalogReader = (*library.Library)(nil)
var _ services.OperationRecorder = (*audit.Service)(nil)

// =============================================================================
// Export
// =============================================================================

var _ exporters.CatalogWriter = (*exporters.MarkdownExporter)(nil)
var _ exporters.CatalogWriter = (*exporters.SnapshotWriter)(nil)
var _ exporters.ExportRecorder = (*audit.Service)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ backlite.Task = tasks.ExportCatalogTask{}
var _ backlite.Task = tasks.PruneAuditTask{}
var _ tasks.CatalogExporter = (*exporters.CatalogExporter)(nil)
var _ tasks.AuditPruner = (*audit.Service)(nil)
var _ scheduler.Enqueuer = (*tasks.Client)(nil)

// =============================================================================
// Command Line
// =============================================================================

var _ cli.Command = (*cli.DemoCommand)(nil)
var _ cli.Command = (*cli.AddAuthorCommand)(nil)
var _ cli.Command = (*cli.UpdateAuthorCommand)(nil)
var _ cli.Command = (*cli.DeleteAuthorCommand)(nil)
var _ cli.Command = (*cli.FindAuthorCommand)(nil)
var _ cli.Command = (*cli.AddBookCommand)(nil)
var _ cli.Command = (*cli.UpdateBookCommand)(nil)
var _ cli.Command = (*cli.DeleteBookCommand)(nil)
var _ cli.Command = (*cli.FindBookCommand)(nil)
var _ cli.Command = (*cli.ListCommand)(nil)
var _ cli.Command = (*cli.ExportCommand)(nil)
var _ cli.Command = (*cli.PruneAuditCommand)(nil)
var _ cli.Command = (*cli.WatchCommand)(nil)
