//
//  (C) Copyright 2019 - 2025  Pavel Tisnovsky
//
//  All rights reserved. This program and the accompanying materials
//  are made available under the terms of the Eclipse Public License v1.0
//  which accompanies this distribution, and is available at
//  http://www.eclipse.org/legal/epl-v10.html
//
//  Contributors:
//      Pavel Tisnovsky
//

package palettes

// SaveBinaryRGBPalette does not write anything: it creates no file and
// always returns nil.
func (palette *Palette) SaveBinaryRGBPalette(filename string) error {
	// TODO: implementation is missing
	return nil
}

// SaveBinaryRGBAPalette does not write anything: it creates no file and
// always returns nil.
func (palette *Palette) SaveBinaryRGBAPalette(filename string) error {
	// TODO: implementation is missing
	return nil
}

// SaveTextRGBPalette does not write anything: it creates no
// Fractint-compatible text file and always returns nil.
func (palette *Palette) SaveTextRGBPalette(filename string) error {
	// TODO: implementation is missing
	return nil
}

// SaveTextRGBAPalette does not write anything: it creates no
// Fractint-semi-compatible text file and always returns nil.
func (palette *Palette) SaveTextRGBAPalette(filename string) error {
	// TODO: implementation is missing
	return nil
}
