// Package spreadsheet turns uploaded .xlsx and .xls workbooks into a
// [models.Table].
//
// Only the first sheet is read. The first non-blank row is the header; every
// following non-blank row becomes a [models.Row] keyed by header name. Header
// cells that are blank are named "__EMPTY", "__EMPTY_1", ... and repeated
// header names receive "_1", "_2", ... suffixes so that every column stays
// addressable. Missing cells read as the empty string.
package spreadsheet
