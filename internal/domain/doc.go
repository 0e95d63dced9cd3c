// Package domain models botanical field records ("sightings") and the
// rules that turn hand-written records into the import format of the
// national species observation system.
//
// # Record Format
//
// A record is a block of "field: value" lines terminated by a blank line:
//
//	artnamn: Lactuca
//	antal:   12 plantor
//	koordinat: 6445700 1362000
//	startdatum: 2011-06-01
//	kommentar: on the slope below the church,
//	    together with Lactuca serriola
//
// Field names are case-insensitive and have aliases ("art", "datum",
// "rt90"). Indented lines continue the previous field. Lines starting
// with '#' are comments. Splitting the stream into such lines is the job
// of the lines adapter; this package sees one field or continuation at a
// time through [Record].
//
// # Field Categories
//
// Official fields form the fixed, ordered output schema (see
// [OfficialFields]). Extension fields are accepted on input and folded
// into official fields during canonicalisation: "koordinat" becomes
// nordkoordinat/ostkoordinat/noggrannhet, and the combined substrate,
// biotope and tree fields ("underlag", "miljö", "träd") land in either the
// controlled-list or the free-text official field. A small set of fields
// from other taxon groups ("ålder", "kön") is tolerated with a warning
// and dropped.
//
// # Coordinates
//
// Coordinates are RT90 2.5 gon V grid pairs, northing first. The number
// of digits carries the precision: "64457 13620" is the same point as
// "6445700 1362000" but only claims 100 m accuracy. [NewPoint] scales any
// such pair to metres and keeps the implied resolution. The import system
// rejects claims finer than 5 m, so a full 7-digit pair is reported as
// "5 m".
//
// Valid northings start with 6 or 7, valid eastings with 12..18; anything
// else is not an RT90 coordinate for this country.
//
// # Dates and Times
//
// Dates are accepted as YYYY-MM-DD, YYYYMMDD or YYMMDD (two-digit years
// below 78 are in the 2000s) and written as YYYY-MM-DD. Times of day are
// accepted as HH:MM or HHMM and written as HH:MM. An end date or time
// that is not given equals the start.
//
// # Diagnostics
//
// Nothing in a record is fatal. Every operation returns the problems it
// found as [diag.Problem] values; the caller adds file and line
// information and decides where they go.
package domain
