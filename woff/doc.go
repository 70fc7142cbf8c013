/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package woff converts WOFF (version 1) font files back into the sfnt container
// (TrueType or OpenType) that they were created from.
//
// Decoding rebuilds the sfnt offset table and table directory, inflates compressed
// table data and pads every table to a 4-byte boundary. Table checksums are copied
// from the WOFF directory as given: they are neither recomputed nor validated, so a
// WOFF file carrying a wrong checksum decodes without error and the wrong value
// appears in the output directory. Callers that need to audit checksums must do so on
// the decoded font.
//
// WOFF2 input is not supported.
package woff
