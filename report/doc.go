// Package report derives statistics and export tables from allocation results.
//
// Summarize computes the aggregate view (occupancy, unallocated count, rooms per
// gender). Flatten turns a result into one row per placed student, and WriteCSV
// and WriteXLSX serialize those rows for downstream tools.
package report
