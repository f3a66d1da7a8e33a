// Package catalog coordinates the storage handles of one file role across
// every grammatical category.
//
// A Catalog is built from a resolved backend and holds exactly one handle
// per category. Lifecycle calls fan out to all handles:
//
//   - Open is idempotent and fail-fast, without rollback.
//   - Close is best effort and never reports an error; failures are logged.
//   - Delete, Save and Edit attempt every handle, then return the first
//     failure in category order as an *OperationError.
//
// Catalogs are single-writer: lifecycle calls on one Catalog must be
// serialized by the caller.
package catalog
