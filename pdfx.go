// Package pdfx provides a client for a remote PDF extraction service.
// A user selects a PDF, the client validates it locally, uploads it,
// requests structured-data extraction for the uploaded file and renders
// the returned JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, mimetype-backed fs/, pdf/).
package pdfx
