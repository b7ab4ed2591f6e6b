// Package schedule derives views from already-fetched scheduling data:
// job date spans, per-job assignment status, payroll totals and the
// per-worker assignment view. Every function is pure and safe to call
// concurrently; nothing here performs I/O or reads request identity.
package schedule
