/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype reads sfnt (TrueType/OpenType) fonts as produced by the woff decoder,
// for inspection and for auditing the table checksums that decoding passes through.
package truetype
