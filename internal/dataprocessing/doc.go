// Package dataprocessing converts raw combine event rows into cleaned
// athlete records with summary statistics.
//
// # Architecture
//
// The package is organized into four components:
//
// 1. Reader: loads CSV or Excel input into header-keyed raw rows
// 2. Parser: field-level cleaning (height strings, numeric coercion)
// 3. Processor: builds athlete records and applies the retention filter
// 4. Analytics: frequency tables and per-metric descriptive statistics
//
// # Data Flow
//
// The typical data flow through this package:
//
//	Input File → Reader → RawRecords → Processor → AthleteRecords → Analytics → Dataset
//
// # Error Handling
//
// Field-level failures never surface as errors: an unparseable height or
// number degrades to a nil value, and a row with no usable measurements
// is silently dropped. Only I/O failures on the input file are returned
// to the caller.
package dataprocessing
