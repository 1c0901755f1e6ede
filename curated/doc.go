// This file is part of zxtape.
//
// zxtape is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zxtape is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zxtape.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a pattern and placeholder
// values in the same way as fmt.Errorf().
//
// The pattern is remembered and can be tested for with the Is() and Has()
// functions. This is how sentinel errors are expressed in zxtape. For example,
// the tapeloader package exports:
//
//	const UnsupportedExtension = "tapeloader: unsupported file extension (%s)"
//
// and a caller can check for it with:
//
//	if curated.Is(err, tapeloader.UnsupportedExtension) {
//		...
//	}
//
// Has() is similar but searches the entire chain of wrapped curated errors.
//
// The Error() function normalises the message chain, removing adjacent
// duplicate parts. Parts are separated by the ": " sub-string. This means a
// function can wrap an error with its own context without worrying whether
// the callee has already done so:
//
//	curated.Errorf("wavwriter: %v", curated.Errorf("wavwriter: %v", err))
//
// produces "wavwriter: <err>" and not "wavwriter: wavwriter: <err>".
package curated
